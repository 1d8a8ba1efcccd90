// Package doctor runs preflight checks against a samples repository: the
// reference sample and templates the scaffolder copies must be in place,
// the Gradle wrapper must be recent enough, and the tokens the scaffolder
// rewrites must still be present.
package doctor
