package info

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/luggage/pkg/app"
	"tableflip.dev/luggage/pkg/timeutil"
)

type Info struct {
	Env *app.Env
	Out io.Writer
}

func (n *Info) Do(ctx context.Context) error {
	w := n.Out
	if w == nil {
		w = color.Output
	}

	if override := os.Getenv("LUGGAGE_CONFIG_PATH"); override != "" {
		_, _ = fmt.Fprintln(w, "LUGGAGE_CONFIG_PATH found on env, using", override)
	} else {
		_, _ = fmt.Fprintln(w, "LUGGAGE_CONFIG_PATH env var not set")
	}

	if n.Env == nil {
		return fmt.Errorf("failed to open the luggage store")
	}
	cfg := n.Env.Config

	file := cfg.File
	if file == "" {
		file = "(none)"
	}
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow("Config file:", file)
	tbl.AddRow("Config.path:", cfg.BasePath())
	tbl.AddRow("Storage:", cfg.Storage)
	if cfg.Storage == "sqlite" {
		tbl.AddRow("SQLite:", cfg.SQLite.Path)
	}
	tbl.AddRow("Session:", cfg.Session.Backend+" ("+cfg.Session.ID+")")
	switch cfg.Session.Backend {
	case "redis":
		tbl.AddRow("Redis:", cfg.Redis.Addr)
		tbl.AddRow("Session TTL:", timeutil.Format(cfg.Session.TTL))
	case "", "disk":
		tbl.AddRow("Session dir:", cfg.SessionPath())
	}
	_, _ = fmt.Fprintln(w, tbl)

	c := n.Env.Service.Collection()
	items, packed := 0, 0
	for _, b := range c {
		p, t := b.Counts()
		packed += p
		items += t
	}
	_, _ = fmt.Fprintf(w, "Baggage: %d\n", len(c))
	_, _ = fmt.Fprintf(w, "Items:   %d packed of %d\n", packed, items)
	return nil
}
