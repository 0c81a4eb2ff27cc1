package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"locgate/internal/usecase"
	"locgate/internal/usecase/impl"
)

type zonesCommand struct {
	global *GlobalOptions
}

func (c *zonesCommand) Execute(_ []string) error {
	a, err := newApp(c.global)
	if err != nil {
		return err
	}
	defer a.Close()

	registry, err := a.localRegistry(context.Background())
	if err != nil {
		return err
	}

	return printZones(context.Background(), impl.NewZoneService(registry, a.logger), os.Stdout)
}

func printZones(ctx context.Context, zones usecase.ZoneUsecase, out io.Writer) error {
	summaries, err := zones.ListZones(ctx)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tREGION\tVERTICES\tBOUND (lon/lat)")
	for _, zone := range summaries {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%.4f,%.4f .. %.4f,%.4f\n",
			zone.ID, zone.Name, zone.Region, zone.Vertices,
			zone.Bound[0], zone.Bound[1], zone.Bound[2], zone.Bound[3])
	}

	return w.Flush()
}
