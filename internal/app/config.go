package app

import "github.com/sirupsen/logrus"

// Config holds runtime wiring options for building the app.
type Config struct {
	Home   string         // config directory, e.g. $HOME/.x3dhkit
	Logger *logrus.Logger // optional; replaces the package-wide logger
}
