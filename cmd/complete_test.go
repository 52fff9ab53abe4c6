package cmd

import (
	"flag"
	"slices"
	"testing"

	"github.com/google/subcommands"
)

func TestCompletion(t *testing.T) {
	commander := subcommands.NewCommander(flag.NewFlagSet("mny", flag.ContinueOnError), "mny")
	Register(commander)

	if !IsRegistered(commander, "convert") || IsRegistered(commander, "hello") {
		t.Errorf("IsRegistered() does not match the registered commands")
	}

	c := Completion(commander)
	for _, name := range []string{"currencies", "format", "calc", "convert", "topic"} {
		if _, ok := c.Sub[name]; !ok {
			t.Errorf("Completion() has no %q subcommand", name)
		}
	}

	convert := c.Sub["convert"]
	for _, f := range []string{"rate", "rates", "path", "from", "to"} {
		if _, ok := convert.Flags[f]; !ok {
			t.Errorf("convert completion has no -%s flag", f)
		}
	}
	if got := convert.Flags["from"].Predict(""); !slices.Contains(got, "EUR") {
		t.Errorf("-from predictions do not contain EUR")
	}

	if got := c.Flags["locale"].Predict(""); !slices.Contains(got, "nl-NL") {
		t.Errorf("-locale predictions = %v, want nl-NL among them", got)
	}
	if got := c.Flags["v"].Predict(""); len(got) != 0 {
		t.Errorf("-v predictions = %v, want none", got)
	}
	if got := c.Sub["topic"].Args.Predict(""); !slices.Contains(got, "formatting") {
		t.Errorf("topic predictions = %v, want formatting among them", got)
	}
}
