package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/pathkeeper/internal/progression"
	"github.com/spf13/pflag"
)

// dayValue is a pflag.Value accepting an absolute day in [1,120].
type dayValue struct {
	day *int
}

func (d dayValue) String() string {
	if d.day == nil || *d.day == 0 {
		return ""
	}
	return strconv.Itoa(*d.day)
}

func (d dayValue) Set(s string) error {
	n, err := parseDay(s)
	if err != nil {
		return err
	}
	*d.day = n
	return nil
}

func (dayValue) Type() string { return "day" }

// addDayFlag registers a --name flag that only accepts days on the path.
func addDayFlag(fs *pflag.FlagSet, p *int, name, usage string) {
	fs.Var(dayValue{day: p}, name, usage)
}

func parseDay(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid day %q", s)
	}
	if !progression.ValidDay(n) {
		return 0, fmt.Errorf("day %d outside 1-%d", n, progression.TotalDays)
	}
	return n, nil
}

// addYesFlag registers the --yes confirmation bypass.
func addYesFlag(fs *pflag.FlagSet, p *bool) {
	fs.BoolVarP(p, "yes", "y", false, "Skip the confirmation prompt")
}
