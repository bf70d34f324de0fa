// Package command provides CLI command definitions for Payrail.
package command

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/payrail/payrail-cli/internal/cli/gateway"
	"github.com/payrail/payrail-cli/internal/cli/output"
	"github.com/payrail/payrail-cli/internal/core/money"
)

// Transaction is one ledger entry on an account. The platform encodes
// transaction amounts as signed decimal strings, unlike account
// balances which arrive in minor units.
type Transaction struct {
	ID          string `json:"id"`
	AccountID   string `json:"account_id"`
	PostedAt    string `json:"posted_at"`
	Description string `json:"description"`
	Amount      string `json:"amount"`
	Currency    string `json:"currency"`
	Status      string `json:"status"`
}

// TransactionsCommand returns the transactions subcommand group.
func TransactionsCommand() *cli.Command {
	return &cli.Command{
		Name:    "transactions",
		Aliases: []string{"tx"},
		Usage:   "Inspect account transactions",
		Action:  groupAction("transactions", transactionsList),
		Subcommands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List transactions for an account",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "account",
						Usage:    "Account to list transactions for",
						Required: true,
					},
					limitFlag(),
					cursorFlag(),
				},
				Action: transactionsList,
			},
			{
				Name:      "get",
				Usage:     "Show one transaction",
				ArgsUsage: "TRANSACTION_ID",
				Action:    transactionsGet,
			},
		},
	}
}

func transactionsTableSpec() output.TableSpec {
	return output.TableSpec{
		Resource: "transactions",
		Columns: []output.Column{
			{Key: "id", Header: "ID", Width: 20},
			{Key: "posted_at", Header: "POSTED AT", Width: 20},
			{Key: "description", Header: "DESCRIPTION", Width: 32},
			{Key: "amount", Header: "AMOUNT", Width: 16},
			{Key: "status", Header: "STATUS", Width: 10},
		},
	}
}

func transactionRow(t Transaction) (output.Row, error) {
	amount, err := money.ParseDecimal(t.Currency, t.Amount)
	if err != nil {
		return nil, fmt.Errorf("transaction %s: %w", t.ID, err)
	}
	return output.Row{
		"id":          t.ID,
		"posted_at":   t.PostedAt,
		"description": t.Description,
		"amount":      amount.String(),
		"status":      t.Status,
	}, nil
}

func transactionsList(c *cli.Context) error {
	rt := runtime(c)

	// The bare-group path skips urfave's required-flag check, so the
	// handler enforces it as well.
	accountID := c.String("account")
	if accountID == "" {
		return fmt.Errorf("missing required flag: --account")
	}

	req := gateway.Get("/v1/accounts/" + accountID + "/transactions")
	req.Query = listQuery(c)

	raw, err := rt.Client.Execute(c.Context, req)
	if err != nil {
		return err
	}
	page, err := gateway.DecodePage[Transaction](raw, "transactions", "items")
	if err != nil {
		return err
	}

	if rt.JSON {
		return rt.Formatter.Format(rt.Stdout, page)
	}

	table := &output.Table{Spec: transactionsTableSpec()}
	for _, tx := range page.Items {
		row, err := transactionRow(tx)
		if err != nil {
			return err
		}
		table.AddRow(row)
	}
	if page.HasMore() {
		table.AddHint("", page.NextCursor)
	}
	return rt.Formatter.Format(rt.Stdout, table)
}

func transactionsGet(c *cli.Context) error {
	rt := runtime(c)

	id, err := requireArg(c, 0, "transaction ID")
	if err != nil {
		return err
	}

	tx, err := gateway.Do[Transaction](c.Context, rt.Client, gateway.Get("/v1/transactions/"+id))
	if err != nil {
		return err
	}

	if rt.JSON {
		return rt.Formatter.Format(rt.Stdout, tx)
	}

	amount, err := money.ParseDecimal(tx.Currency, tx.Amount)
	if err != nil {
		return fmt.Errorf("transaction %s: %w", tx.ID, err)
	}

	sheet := &output.Sheet{}
	sheet.AddField("ID", tx.ID)
	sheet.AddField("Account", tx.AccountID)
	sheet.AddField("Posted At", tx.PostedAt)
	sheet.AddField("Description", tx.Description)
	sheet.AddField("Amount", amount.String())
	sheet.AddField("Status", tx.Status)
	return rt.Formatter.Format(rt.Stdout, sheet)
}
