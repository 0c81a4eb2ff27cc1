package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"locgate/internal/domain/entity"
	"locgate/internal/errors"
	"locgate/internal/infra/device"
	"locgate/internal/infra/places"
	"locgate/internal/usecase"
	"locgate/internal/usecase/impl"
)

type manualCommand struct {
	global *GlobalOptions

	Lat   *float64      `long:"lat"   description:"Latitude of the chosen location"`
	Lon   *float64      `long:"lon"   description:"Longitude of the chosen location"`
	Query string        `long:"query" description:"Places query whose best match is validated; - reads typed input from stdin"`
	Pick  int           `long:"pick"  description:"Index of the candidate to validate" default:"0"`
	Label string        `long:"label" description:"Save the address under this label once it is serviceable" choice:"home" choice:"work" choice:"other"`
	Wait  time.Duration `long:"wait"  description:"Give up after this long" default:"30s"`
}

func (c *manualCommand) Execute(_ []string) error {
	if c.Query == "" && (c.Lat == nil || c.Lon == nil) {
		return errors.New("either --lat and --lon or --query is required")
	}

	a, err := newApp(c.global)
	if err != nil {
		return err
	}
	defer a.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, c.Wait)
	defer cancel()

	address, err := c.chooseAddress(ctx, a, os.Stdin, os.Stdout)
	if err != nil {
		return err
	}

	sim, err := newSimulation(ctx, a)
	if err != nil {
		return err
	}

	return c.validate(ctx, sim, address, os.Stdout)
}

// chooseAddress turns the flags into the address the user picked.
func (c *manualCommand) chooseAddress(ctx context.Context, a *app, in io.Reader, out io.Writer) (*entity.SavedAddress, error) {
	if c.Query == "" {
		coords := entity.Coordinates{Latitude: *c.Lat, Longitude: *c.Lon}

		return &entity.SavedAddress{Lines: []string{coords.String()}, Coordinates: &coords}, nil
	}

	if a.cfg.Places == nil || a.cfg.Places.APIKey == "" || a.cfg.Places.BaseURL == "" {
		return nil, errors.New("places search needs places.baseUrl and places.apiKey")
	}
	cache, closeCache, err := places.NewCache(a.cfg, a.clock, a.logger)
	if err != nil {
		return nil, err
	}
	a.closers = append(a.closers, closeCache)

	session := impl.NewPlaceSearchSession(places.NewClient(a.cfg.Places, cache, a.logger), a.cfg.Places, a.clock, a.logger)
	defer session.Close()

	var candidates []entity.PlaceCandidate
	if c.Query == "-" {
		candidates, err = typedSearch(ctx, session, in)
	} else {
		candidates, err = session.Search(ctx, c.Query)
	}
	if err != nil {
		return nil, err
	}

	for i, candidate := range candidates {
		fmt.Fprintf(out, "[%d] %s, %s %s\n", i, candidate.Name, candidate.FormattedAddress, candidate.Coordinates())
	}
	if c.Pick < 0 || c.Pick >= len(candidates) {
		return nil, errors.Errorf("no candidate %d among %d results", c.Pick, len(candidates))
	}

	picked := candidates[c.Pick]
	coords := picked.Coordinates()

	return &entity.SavedAddress{
		Lines:       []string{picked.Name, picked.FormattedAddress},
		Coordinates: &coords,
	}, nil
}

// typedSearch feeds each stdin line through the debounced search and keeps
// the last delivered result.
func typedSearch(ctx context.Context, session usecase.PlaceSearch, in io.Reader) ([]entity.PlaceCandidate, error) {
	scanner := bufio.NewScanner(in)
	var last string
	for scanner.Scan() {
		last = scanner.Text()
		session.Input(last)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.WithStack(err)
	}
	if strings.TrimSpace(last) == "" {
		return nil, errors.New("no query typed")
	}

	for {
		select {
		case result, ok := <-session.Results():
			if !ok {
				return nil, errors.New("search closed")
			}
			if result.Query != strings.Join(strings.Fields(last), " ") {
				continue
			}

			return result.Candidates, result.Err
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
}

func (c *manualCommand) validate(ctx context.Context, sim *simulation, address *entity.SavedAddress, out io.Writer) error {
	presenter := newConsolePresenter(out, sim.clock)
	provider := device.NewScriptedProvider(device.Script{}, sim.clock)

	engine := impl.NewGatingEngine(impl.GatingEngineParams{
		Identity:  sim.identity,
		Provider:  provider,
		Zones:     sim.zones,
		Store:     sim.store,
		Settings:  device.NewSimulatedSettings(sim.logger, provider),
		Notifier:  sim.notifier,
		Clock:     sim.clock,
		Config:    sim.cfg.Gating,
		Logger:    sim.logger,
		Observers: []usecase.GatingObserver{presenter},
	})
	defer engine.Close()

	if err := engine.ValidateManualAddress(ctx, address, *address.Coordinates); err != nil {
		return err
	}

	state := engine.State()
	presenter.summary(state)

	switch state.Status {
	case entity.StatusCompleted:
		if c.Label == "" {
			return nil
		}
		saved, err := sim.store.SaveAddress(ctx, sim.identity, &usecase.SaveAddressInput{
			Lines:       address.Lines,
			Coordinates: address.Coordinates,
			Label:       entity.AddressLabel(c.Label),
		})
		if err != nil {
			return err
		}
		presenter.note("saved address %s as %s (default: %t)", saved.ID, saved.Label, saved.IsDefault)

		return nil
	case entity.StatusServiceNotAvailable:
		return nil
	default:
		return errSessionFailed
	}
}
