package doctor

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// WrapperProperties is the Gradle wrapper file, relative to the repository root.
const WrapperProperties = "gradle/wrapper/gradle-wrapper.properties"

var distributionRegex = regexp.MustCompile(`gradle-([0-9][0-9A-Za-z.\-]*?)-(?:bin|all)\.zip`)

// GradleVersion extracts the Gradle version from the distributionUrl of a
// gradle-wrapper.properties file.
func GradleVersion(properties []byte) (string, error) {
	scanner := bufio.NewScanner(bytes.NewReader(properties))
	for scanner.Scan() {
		key, value, ok := strings.Cut(strings.TrimSpace(scanner.Text()), "=")
		if !ok || strings.TrimSpace(key) != "distributionUrl" {
			continue
		}
		m := distributionRegex.FindStringSubmatch(value)
		if m == nil {
			return "", fmt.Errorf("unrecognized distributionUrl %q", strings.TrimSpace(value))
		}
		return m[1], nil
	}
	if err := scanner.Err(); err != nil {
		return "", err
	}
	return "", fmt.Errorf("distributionUrl not found")
}

// CompareVersions compares two version strings using semver.
// Returns -1 if a < b, 0 if equal, 1 if a > b.
func CompareVersions(a, b string) (int, error) {
	av, err := parseSemver(a)
	if err != nil {
		return 0, fmt.Errorf("parsing version %q: %w", a, err)
	}
	bv, err := parseSemver(b)
	if err != nil {
		return 0, fmt.Errorf("parsing version %q: %w", b, err)
	}
	return av.Compare(bv), nil
}

// parseSemver strips a leading "v" and parses the version string.
func parseSemver(version string) (*semver.Version, error) {
	version = strings.TrimPrefix(strings.TrimSpace(version), "v")
	return semver.NewVersion(version)
}

func checkGradleWrapper(r *Report, root, minVersion string) {
	const name = "gradle wrapper"
	p := filepath.Join(root, filepath.FromSlash(WrapperProperties))
	data, err := os.ReadFile(p)
	if os.IsNotExist(err) {
		r.add(name, StatusWarn, "%s not found", p)
		return
	}
	if err != nil {
		r.add(name, StatusWarn, "%s: %v", p, err)
		return
	}

	version, err := GradleVersion(data)
	if err != nil {
		r.add(name, StatusWarn, "%s: %v", p, err)
		return
	}
	if minVersion == "" {
		r.add(name, StatusOK, "Gradle %s", version)
		return
	}

	cmp, err := CompareVersions(version, minVersion)
	if err != nil {
		r.add(name, StatusWarn, "%v", err)
		return
	}
	if cmp < 0 {
		r.add(name, StatusFail, "Gradle %s is older than %s", version, minVersion)
		return
	}
	r.add(name, StatusOK, "Gradle %s (>= %s)", version, minVersion)
}
