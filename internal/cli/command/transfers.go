// Package command provides CLI command definitions for Payrail.
package command

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/payrail/payrail-cli/internal/cli/gateway"
	"github.com/payrail/payrail-cli/internal/cli/output"
	"github.com/payrail/payrail-cli/internal/core/money"
)

// Transfer is one money movement from an account to a recipient.
type Transfer struct {
	ID            string  `json:"id"`
	FromAccountID string  `json:"from_account_id"`
	RecipientID   string  `json:"recipient_id"`
	Amount        string  `json:"amount"`
	Currency      string  `json:"currency"`
	Status        string  `json:"status"`
	Note          *string `json:"note"`
	CreatedAt     string  `json:"created_at"`
}

// transferCreateBody is the typed POST /v1/transfers payload. Optional
// fields are pointers so unset ones are omitted rather than sent as
// zero values.
type transferCreateBody struct {
	FromAccountID string  `json:"from_account_id"`
	RecipientID   string  `json:"recipient_id"`
	Amount        string  `json:"amount"`
	Currency      string  `json:"currency"`
	Note          *string `json:"note,omitempty"`
}

// TransfersCommand returns the transfers subcommand group.
func TransfersCommand() *cli.Command {
	return &cli.Command{
		Name:    "transfers",
		Aliases: []string{"xfer"},
		Usage:   "Create and inspect transfers",
		Action:  groupAction("transfers", nil),
		Subcommands: []*cli.Command{
			{
				Name:   "list",
				Usage:  "List transfers",
				Flags:  []cli.Flag{transferStatusFlag(), limitFlag(), cursorFlag()},
				Action: transfersList,
			},
			{
				Name:      "get",
				Usage:     "Show one transfer",
				ArgsUsage: "TRANSFER_ID",
				Action:    transfersGet,
			},
			{
				Name:  "create",
				Usage: "Send money to a recipient",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "from",
						Usage:    "Source account ID",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "recipient",
						Usage:    "Recipient ID",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "amount",
						Usage:    "Decimal amount, e.g. 125.00",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "currency",
						Usage:    "Three-letter currency code",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "note",
						Usage: "Free-form note attached to the transfer",
					},
					idempotencyKeyFlag(),
				},
				Action: transfersCreate,
			},
			{
				Name:      "cancel",
				Usage:     "Cancel a pending transfer",
				ArgsUsage: "TRANSFER_ID",
				Action:    transfersCancel,
			},
		},
	}
}

func transfersTableSpec() output.TableSpec {
	return output.TableSpec{
		Resource: "transfers",
		Columns: []output.Column{
			{Key: "id", Header: "ID", Width: 20},
			{Key: "from", Header: "FROM", Width: 20},
			{Key: "recipient", Header: "RECIPIENT", Width: 20},
			{Key: "amount", Header: "AMOUNT", Width: 16},
			{Key: "status", Header: "STATUS", Width: 10},
			{Key: "created_at", Header: "CREATED AT", Width: 20},
		},
	}
}

func transferRow(t Transfer) (output.Row, error) {
	amount, err := money.ParseDecimal(t.Currency, t.Amount)
	if err != nil {
		return nil, fmt.Errorf("transfer %s: %w", t.ID, err)
	}
	return output.Row{
		"id":         t.ID,
		"from":       t.FromAccountID,
		"recipient":  t.RecipientID,
		"amount":     amount.String(),
		"status":     t.Status,
		"created_at": t.CreatedAt,
	}, nil
}

func transferSheet(t Transfer) (*output.Sheet, error) {
	amount, err := money.ParseDecimal(t.Currency, t.Amount)
	if err != nil {
		return nil, fmt.Errorf("transfer %s: %w", t.ID, err)
	}

	sheet := &output.Sheet{}
	sheet.AddField("ID", t.ID)
	sheet.AddField("From", t.FromAccountID)
	sheet.AddField("Recipient", t.RecipientID)
	sheet.AddField("Amount", amount.String())
	sheet.AddField("Status", t.Status)
	if t.Note != nil {
		sheet.AddField("Note", *t.Note)
	}
	sheet.AddField("Created At", t.CreatedAt)
	return sheet, nil
}

func transfersList(c *cli.Context) error {
	rt := runtime(c)

	req := gateway.Get("/v1/transfers")
	req.Query = listQuery(c)
	if status := enumString(c, "status"); status != "" {
		req.Query.Set("status", status)
	}

	raw, err := rt.Client.Execute(c.Context, req)
	if err != nil {
		return err
	}
	page, err := gateway.DecodePage[Transfer](raw, "transfers", "items")
	if err != nil {
		return err
	}

	if rt.JSON {
		return rt.Formatter.Format(rt.Stdout, page)
	}

	table := &output.Table{Spec: transfersTableSpec()}
	for _, transfer := range page.Items {
		row, err := transferRow(transfer)
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

func transfersGet(c *cli.Context) error {
	rt := runtime(c)

	id, err := requireArg(c, 0, "transfer ID")
	if err != nil {
		return err
	}

	transfer, err := gateway.Do[Transfer](c.Context, rt.Client, gateway.Get("/v1/transfers/"+id))
	if err != nil {
		return err
	}

	return renderTransfer(rt, transfer)
}

func transfersCreate(c *cli.Context) error {
	rt := runtime(c)

	// Validate and canonicalize the amount locally before any network
	// activity; the platform expects a two-decimal string.
	amount, err := money.ParseDecimal(c.String("currency"), c.String("amount"))
	if err != nil {
		return err
	}

	body := transferCreateBody{
		FromAccountID: c.String("from"),
		RecipientID:   c.String("recipient"),
		Amount:        amount.DecimalString(),
		Currency:      amount.Currency(),
	}
	if c.IsSet("note") {
		note := c.String("note")
		body.Note = &note
	}

	req := gateway.Post("/v1/transfers", body)
	if key := c.String("idempotency-key"); key != "" {
		req.IdempotencyKey = key
	}

	transfer, err := gateway.Do[Transfer](c.Context, rt.Client, req)
	if err != nil {
		return err
	}

	return renderTransfer(rt, transfer)
}

func transfersCancel(c *cli.Context) error {
	rt := runtime(c)

	id, err := requireArg(c, 0, "transfer ID")
	if err != nil {
		return err
	}

	req := gateway.Post("/v1/transfers/"+id+"/cancel", nil)
	transfer, err := gateway.Do[Transfer](c.Context, rt.Client, req)
	if err != nil {
		return err
	}

	return renderTransfer(rt, transfer)
}

func renderTransfer(rt *Runtime, transfer Transfer) error {
	if rt.JSON {
		return rt.Formatter.Format(rt.Stdout, transfer)
	}
	sheet, err := transferSheet(transfer)
	if err != nil {
		return err
	}
	return rt.Formatter.Format(rt.Stdout, sheet)
}
