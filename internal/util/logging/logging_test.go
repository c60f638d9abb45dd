package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestFor_TagsComponent(t *testing.T) {
	prev := Logger()
	defer SetLogger(prev)

	var buf bytes.Buffer
	l := logrus.New()
	l.SetOutput(&buf)
	l.SetLevel(logrus.DebugLevel)
	SetLogger(l)

	For("cipher").Debug("hello")
	if !strings.Contains(buf.String(), "component=cipher") {
		t.Fatalf("missing component field: %q", buf.String())
	}

	SetLogger(nil)
	if Logger() != l {
		t.Fatal("nil logger replaced the current one")
	}
}
