// Package command provides CLI command definitions for Payrail.
package command

import (
	"errors"
	"net/url"
	"strconv"

	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"

	"github.com/payrail/payrail-cli/internal/cli/gateway"
	"github.com/payrail/payrail-cli/internal/cli/output"
	"github.com/payrail/payrail-cli/internal/core/money"
)

// Account is one payment account as returned by the platform.
// Timestamps stay strings so JSON output reproduces the platform's
// representation byte for byte.
type Account struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Kind         string `json:"kind"`
	Status       string `json:"status"`
	Currency     string `json:"currency"`
	BalanceMinor int64  `json:"balance_minor"`
	CreatedAt    string `json:"created_at"`
}

// accountKinds is the fixed merge order of the combined listing:
// checking rows always precede savings rows, whatever order the two
// fetches complete in.
var accountKinds = []string{"checking", "savings"}

// AccountsCommand returns the accounts subcommand group.
func AccountsCommand() *cli.Command {
	return &cli.Command{
		Name:    "accounts",
		Aliases: []string{"acct"},
		Usage:   "Inspect payment accounts",
		Action:  groupAction("accounts", accountsList),
		Subcommands: []*cli.Command{
			{
				Name:   "list",
				Usage:  "List accounts",
				Flags:  []cli.Flag{kindFlag(), limitFlag(), cursorFlag()},
				Action: accountsList,
			},
			{
				Name:      "get",
				Usage:     "Show one account",
				ArgsUsage: "ACCOUNT_ID",
				Action:    accountsGet,
			},
		},
	}
}

func accountsTableSpec() output.TableSpec {
	return output.TableSpec{
		Resource: "accounts",
		Columns: []output.Column{
			{Key: "id", Header: "ID", Width: 20},
			{Key: "name", Header: "NAME", Width: 24},
			{Key: "kind", Header: "KIND", Width: 8},
			{Key: "status", Header: "STATUS", Width: 8},
			{Key: "balance", Header: "BALANCE", Width: 16},
		},
	}
}

func accountRow(a Account) output.Row {
	return output.Row{
		"id":      a.ID,
		"name":    a.Name,
		"kind":    a.Kind,
		"status":  a.Status,
		"balance": money.FromMinorUnits(a.Currency, a.BalanceMinor).String(),
	}
}

func accountsList(c *cli.Context) error {
	rt := runtime(c)

	kind := enumString(c, "kind")
	if kind == "" {
		return accountsListCombined(c, rt)
	}

	req := gateway.Get("/v1/accounts")
	req.Query = listQuery(c)
	req.Query.Set("kind", kind)

	raw, err := rt.Client.Execute(c.Context, req)
	if err != nil {
		return err
	}
	page, err := gateway.DecodePage[Account](raw, "accounts", "items")
	if err != nil {
		return err
	}

	if rt.JSON {
		return rt.Formatter.Format(rt.Stdout, page)
	}

	table := &output.Table{Spec: accountsTableSpec()}
	for _, account := range page.Items {
		table.AddRow(accountRow(account))
	}
	if page.HasMore() {
		table.AddHint("", page.NextCursor)
	}
	return rt.Formatter.Format(rt.Stdout, table)
}

// accountsListCombined fetches both account kinds concurrently and
// merges them in fixed kind order. Each kind paginates independently,
// so a single --cursor would be ambiguous here.
func accountsListCombined(c *cli.Context, rt *Runtime) error {
	if c.IsSet("cursor") {
		return errors.New("--cursor requires --kind: the combined listing paginates per kind")
	}

	limit := positiveInt(c, "limit")
	pages := make([]gateway.Page[Account], len(accountKinds))

	g, ctx := errgroup.WithContext(c.Context)
	for i, kind := range accountKinds {
		g.Go(func() error {
			q := url.Values{}
			q.Set("kind", kind)
			if limit > 0 {
				q.Set("limit", strconv.Itoa(limit))
			}

			req := gateway.Get("/v1/accounts")
			req.Query = q

			raw, err := rt.Client.Execute(ctx, req)
			if err != nil {
				return err
			}
			page, err := gateway.DecodePage[Account](raw, "accounts", "items")
			if err != nil {
				return err
			}
			pages[i] = page
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	items := make([]Account, 0, len(pages[0].Items)+len(pages[1].Items))
	items = append(items, pages[0].Items...)
	items = append(items, pages[1].Items...)

	if rt.JSON {
		combined := struct {
			Items          []Account `json:"items"`
			CheckingCursor *string   `json:"checking_cursor"`
			SavingsCursor  *string   `json:"savings_cursor"`
		}{Items: items}
		if pages[0].HasMore() {
			combined.CheckingCursor = &pages[0].NextCursor
		}
		if pages[1].HasMore() {
			combined.SavingsCursor = &pages[1].NextCursor
		}
		return rt.Formatter.Format(rt.Stdout, combined)
	}

	table := &output.Table{Spec: accountsTableSpec()}
	for _, account := range items {
		table.AddRow(accountRow(account))
	}
	for i, kind := range accountKinds {
		if pages[i].HasMore() {
			table.AddHint(kind, pages[i].NextCursor)
		}
	}
	return rt.Formatter.Format(rt.Stdout, table)
}

func accountsGet(c *cli.Context) error {
	rt := runtime(c)

	id, err := requireArg(c, 0, "account ID")
	if err != nil {
		return err
	}

	account, err := gateway.Do[Account](c.Context, rt.Client, gateway.Get("/v1/accounts/"+id))
	if err != nil {
		return err
	}

	if rt.JSON {
		return rt.Formatter.Format(rt.Stdout, account)
	}

	sheet := &output.Sheet{}
	sheet.AddField("ID", account.ID)
	sheet.AddField("Name", account.Name)
	sheet.AddField("Kind", account.Kind)
	sheet.AddField("Status", account.Status)
	sheet.AddField("Balance", money.FromMinorUnits(account.Currency, account.BalanceMinor).String())
	sheet.AddField("Created At", account.CreatedAt)
	return rt.Formatter.Format(rt.Stdout, sheet)
}
