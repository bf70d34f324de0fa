// Package command provides CLI command definitions for Payrail.
package command

import (
	"errors"
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/payrail/payrail-cli/internal/cli/gateway"
	"github.com/payrail/payrail-cli/internal/cli/output"
)

// Webhook is a registered event delivery endpoint.
type Webhook struct {
	ID        string   `json:"id"`
	URL       string   `json:"url"`
	Events    []string `json:"events"`
	Enabled   bool     `json:"enabled"`
	Status    string   `json:"status"`
	CreatedAt string   `json:"created_at"`
}

// webhookCreateBody is the typed POST /v1/webhooks payload. An empty
// event list subscribes the endpoint to all events.
type webhookCreateBody struct {
	URL    string   `json:"url"`
	Events []string `json:"events,omitempty"`
}

// webhookUpdateBody is the typed PATCH /v1/webhooks/{id} payload.
type webhookUpdateBody struct {
	URL     *string  `json:"url,omitempty"`
	Events  []string `json:"events,omitempty"`
	Enabled *bool    `json:"enabled,omitempty"`
}

// WebhooksCommand returns the webhooks subcommand group.
func WebhooksCommand() *cli.Command {
	return &cli.Command{
		Name:    "webhooks",
		Aliases: []string{"hook"},
		Usage:   "Manage webhook endpoints",
		Action:  groupAction("webhooks", nil),
		Subcommands: []*cli.Command{
			{
				Name:   "list",
				Usage:  "List webhooks",
				Flags:  []cli.Flag{limitFlag(), cursorFlag()},
				Action: webhooksList,
			},
			{
				Name:      "get",
				Usage:     "Show one webhook",
				ArgsUsage: "WEBHOOK_ID",
				Action:    webhooksGet,
			},
			{
				Name:  "create",
				Usage: "Register a webhook endpoint",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "url",
						Usage:    "Delivery URL",
						Required: true,
					},
					&cli.StringSliceFlag{
						Name:  "event",
						Usage: "Event type to subscribe to (repeatable)",
					},
					idempotencyKeyFlag(),
				},
				Action: webhooksCreate,
			},
			{
				Name:      "update",
				Usage:     "Update a webhook endpoint",
				ArgsUsage: "WEBHOOK_ID",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "url",
						Usage: "New delivery URL",
					},
					&cli.StringSliceFlag{
						Name:  "event",
						Usage: "Replacement event subscription (repeatable)",
					},
					enabledFlag(),
					idempotencyKeyFlag(),
				},
				Action: webhooksUpdate,
			},
			{
				Name:      "delete",
				Usage:     "Delete a webhook endpoint",
				ArgsUsage: "WEBHOOK_ID",
				Flags:     []cli.Flag{forceFlag()},
				Action:    webhooksDelete,
			},
		},
	}
}

func webhooksTableSpec() output.TableSpec {
	return output.TableSpec{
		Resource: "webhooks",
		Columns: []output.Column{
			{Key: "id", Header: "ID", Width: 20},
			{Key: "url", Header: "URL", Width: 36},
			{Key: "events", Header: "EVENTS", Width: 32},
			{Key: "status", Header: "STATUS", Width: 8},
			{Key: "created_at", Header: "CREATED AT", Width: 20},
		},
	}
}

func webhookRow(w Webhook) output.Row {
	return output.Row{
		"id":         w.ID,
		"url":        w.URL,
		"events":     strings.Join(w.Events, ","),
		"status":     w.Status,
		"created_at": w.CreatedAt,
	}
}

func webhookSheet(w Webhook) *output.Sheet {
	sheet := &output.Sheet{}
	sheet.AddField("ID", w.ID)
	sheet.AddField("URL", w.URL)
	sheet.AddField("Events", strings.Join(w.Events, ","))
	sheet.AddField("Enabled", fmt.Sprintf("%t", w.Enabled))
	sheet.AddField("Status", w.Status)
	sheet.AddField("Created At", w.CreatedAt)
	return sheet
}

func webhooksList(c *cli.Context) error {
	rt := runtime(c)

	req := gateway.Get("/v1/webhooks")
	req.Query = listQuery(c)

	raw, err := rt.Client.Execute(c.Context, req)
	if err != nil {
		return err
	}
	page, err := gateway.DecodePage[Webhook](raw, "webhooks", "items")
	if err != nil {
		return err
	}

	if rt.JSON {
		return rt.Formatter.Format(rt.Stdout, page)
	}

	table := &output.Table{Spec: webhooksTableSpec()}
	for _, webhook := range page.Items {
		table.AddRow(webhookRow(webhook))
	}
	if page.HasMore() {
		table.AddHint("", page.NextCursor)
	}
	return rt.Formatter.Format(rt.Stdout, table)
}

func webhooksGet(c *cli.Context) error {
	rt := runtime(c)

	id, err := requireArg(c, 0, "webhook ID")
	if err != nil {
		return err
	}

	webhook, err := gateway.Do[Webhook](c.Context, rt.Client, gateway.Get("/v1/webhooks/"+id))
	if err != nil {
		return err
	}

	return renderWebhook(rt, webhook)
}

func webhooksCreate(c *cli.Context) error {
	rt := runtime(c)

	body := webhookCreateBody{
		URL:    c.String("url"),
		Events: c.StringSlice("event"),
	}

	req := gateway.Post("/v1/webhooks", body)
	if key := c.String("idempotency-key"); key != "" {
		req.IdempotencyKey = key
	}

	webhook, err := gateway.Do[Webhook](c.Context, rt.Client, req)
	if err != nil {
		return err
	}

	return renderWebhook(rt, webhook)
}

func webhooksUpdate(c *cli.Context) error {
	rt := runtime(c)

	id, err := requireArg(c, 0, "webhook ID")
	if err != nil {
		return err
	}

	if !c.IsSet("url") && !c.IsSet("event") && !c.IsSet("enabled") {
		return errors.New("nothing to update: provide --url, --event, or --enabled")
	}

	var body webhookUpdateBody
	if c.IsSet("url") {
		u := c.String("url")
		body.URL = &u
	}
	if c.IsSet("event") {
		body.Events = c.StringSlice("event")
	}
	if v := enumString(c, "enabled"); v != "" {
		enabled := v == "true"
		body.Enabled = &enabled
	}

	req := gateway.Patch("/v1/webhooks/"+id, body)
	if key := c.String("idempotency-key"); key != "" {
		req.IdempotencyKey = key
	}

	webhook, err := gateway.Do[Webhook](c.Context, rt.Client, req)
	if err != nil {
		return err
	}

	return renderWebhook(rt, webhook)
}

func webhooksDelete(c *cli.Context) error {
	rt := runtime(c)

	id, err := requireArg(c, 0, "webhook ID")
	if err != nil {
		return err
	}

	if !c.Bool("force") {
		if !confirm(rt, fmt.Sprintf("Delete webhook %s?", id)) {
			fmt.Fprintln(rt.Stdout, "Cancelled.")
			return nil
		}
	}

	if _, err := rt.Client.Execute(c.Context, gateway.Delete("/v1/webhooks/"+id)); err != nil {
		return err
	}

	if rt.JSON {
		return rt.Formatter.Format(rt.Stdout, struct {
			ID      string `json:"id"`
			Deleted bool   `json:"deleted"`
		}{id, true})
	}
	fmt.Fprintf(rt.Stdout, "Webhook %s deleted.\n", id)
	return nil
}

func renderWebhook(rt *Runtime, webhook Webhook) error {
	if rt.JSON {
		return rt.Formatter.Format(rt.Stdout, webhook)
	}
	return rt.Formatter.Format(rt.Stdout, webhookSheet(webhook))
}
