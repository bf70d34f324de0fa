// Package command provides CLI command definitions for Payrail.
package command

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/urfave/cli/v2"
)

// enumValue restricts a flag to a fixed value set. Validation happens
// at parse time, before any handler or network activity.
type enumValue struct {
	allowed []string
	value   string
}

func (e *enumValue) Set(value string) error {
	for _, a := range e.allowed {
		if value == a {
			e.value = value
			return nil
		}
	}
	return fmt.Errorf("must be one of: %s", strings.Join(e.allowed, ", "))
}

func (e *enumValue) String() string { return e.value }

// positiveIntValue restricts a flag to integers >= 1.
type positiveIntValue struct {
	value int
}

func (p *positiveIntValue) Set(value string) error {
	n, err := strconv.Atoi(value)
	if err != nil || n < 1 {
		return errors.New("must be a positive integer")
	}
	p.value = n
	return nil
}

func (p *positiveIntValue) String() string {
	if p.value == 0 {
		return ""
	}
	return strconv.Itoa(p.value)
}

// enumString returns the validated value of an enum flag, or "" when
// the flag is unset or not defined on this command.
func enumString(c *cli.Context, name string) string {
	if v, ok := c.Generic(name).(*enumValue); ok {
		return v.value
	}
	return ""
}

// positiveInt returns the validated value of a positive-int flag, or 0
// when the flag is unset or not defined on this command.
func positiveInt(c *cli.Context, name string) int {
	if v, ok := c.Generic(name).(*positiveIntValue); ok {
		return v.value
	}
	return 0
}

// Shared flag constructors. Every list subcommand carries limit and
// cursor; mutating subcommands carry idempotency-key and force where
// confirmation applies.

func limitFlag() cli.Flag {
	return &cli.GenericFlag{
		Name:  "limit",
		Usage: "Maximum items to return",
		Value: &positiveIntValue{},
	}
}

func cursorFlag() cli.Flag {
	return &cli.StringFlag{
		Name:  "cursor",
		Usage: "Opaque pagination cursor from a previous listing",
	}
}

func kindFlag() cli.Flag {
	return &cli.GenericFlag{
		Name:  "kind",
		Usage: "Account kind (checking, savings)",
		Value: &enumValue{allowed: []string{"checking", "savings"}},
	}
}

func transferStatusFlag() cli.Flag {
	return &cli.GenericFlag{
		Name:  "status",
		Usage: "Filter by transfer status",
		Value: &enumValue{allowed: []string{"pending", "processing", "sent", "failed", "canceled"}},
	}
}

func enabledFlag() cli.Flag {
	return &cli.GenericFlag{
		Name:  "enabled",
		Usage: "Enable or disable delivery (true, false)",
		Value: &enumValue{allowed: []string{"true", "false"}},
	}
}

func idempotencyKeyFlag() cli.Flag {
	return &cli.StringFlag{
		Name:  "idempotency-key",
		Usage: "Explicit idempotency key for this mutation",
	}
}

func forceFlag() cli.Flag {
	return &cli.BoolFlag{
		Name:    "force",
		Aliases: []string{"f"},
		Usage:   "Skip confirmation",
	}
}

// listQuery assembles the pagination query parameters shared by every
// list subcommand. The cursor is forwarded verbatim: it is the
// server's token, never interpreted client-side.
func listQuery(c *cli.Context) url.Values {
	q := url.Values{}
	if n := positiveInt(c, "limit"); n > 0 {
		q.Set("limit", strconv.Itoa(n))
	}
	if cursor := c.String("cursor"); cursor != "" {
		q.Set("cursor", cursor)
	}
	return q
}

// requireArg returns the nth positional argument or an error naming
// what is missing.
func requireArg(c *cli.Context, n int, name string) (string, error) {
	arg := c.Args().Get(n)
	if arg == "" {
		return "", fmt.Errorf("%s required", name)
	}
	return arg, nil
}

// deref renders an optional string field, empty when absent.
func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
