// Package domain defines core data models, error kinds and interfaces shared
// across x3dhkit. It contains plain types (wire/state) and contracts only.
package domain
