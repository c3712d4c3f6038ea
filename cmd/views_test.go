package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/nicorai/nicorai/internal/config"
)

func TestPrintViews(t *testing.T) {
	var out bytes.Buffer
	printViews(&out, config.DefaultViews())

	for _, v := range config.DefaultViews() {
		if !strings.Contains(out.String(), v.ID) || !strings.Contains(out.String(), v.Title) {
			t.Errorf("output missing %s/%s:\n%s", v.ID, v.Title, out.String())
		}
	}
}

func TestPrintViews_Empty(t *testing.T) {
	var out bytes.Buffer
	printViews(&out, nil)

	if !strings.Contains(out.String(), "No views configured.") {
		t.Errorf("output = %q", out.String())
	}
}
