package forms

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/user/match-moments-cli/gamelog"
)

// MomentFormResult holds the data entered in a moment edit or insert form.
// Timecodes are kept as text until submit so validation errors stay visible
// in the form.
type MomentFormResult struct {
	PlayerID string
	Event    string
	Inpoint  string
	Outpoint string
}

// EditRequest converts the form result into a store edit request.
func (r *MomentFormResult) EditRequest() (gamelog.EditRequest, error) {
	in, out, err := r.timecodes()
	if err != nil {
		return gamelog.EditRequest{}, err
	}
	return gamelog.EditRequest{
		PlayerID: r.PlayerID,
		Event:    r.Event,
		Inpoint:  in,
		Outpoint: out,
	}, nil
}

// InsertRequest converts the form result into a store insert request.
func (r *MomentFormResult) InsertRequest() (gamelog.InsertRequest, error) {
	in, out, err := r.timecodes()
	if err != nil {
		return gamelog.InsertRequest{}, err
	}
	return gamelog.InsertRequest{
		PlayerID: r.PlayerID,
		Event:    r.Event,
		Inpoint:  in,
		Outpoint: out,
	}, nil
}

func (r *MomentFormResult) timecodes() (int, int, error) {
	in, err := gamelog.ParseTimecode(r.Inpoint)
	if err != nil {
		return 0, 0, err
	}
	out, err := gamelog.ParseTimecode(r.Outpoint)
	if err != nil {
		return 0, 0, err
	}
	return in, out, nil
}

// NewMomentForm creates a huh form for editing or inserting a moment. The
// player field offers every player from the log's directory; the event
// field offers catalog labels when a catalog is loaded, and free text
// otherwise. The result pointer is populated on submit.
func NewMomentForm(title string, store *gamelog.Store, catalog []string, result *MomentFormResult) *huh.Form {
	playerOptions := make([]huh.Option[string], 0, len(store.PlayerIDs()))
	for _, entry := range gamelog.PlayerPicker(store) {
		playerOptions = append(playerOptions, huh.NewOption(entry.Label, entry.ID))
	}

	var eventField huh.Field
	if len(catalog) > 0 {
		eventOptions := make([]huh.Option[string], 0, len(catalog))
		for _, label := range catalog {
			eventOptions = append(eventOptions, huh.NewOption(label, label))
		}
		eventField = huh.NewSelect[string]().
			Title("Event").
			Options(eventOptions...).
			Value(&result.Event)
	} else {
		eventField = huh.NewInput().
			Title("Event").
			Value(&result.Event).
			Validate(func(s string) error {
				if s == "" {
					return fmt.Errorf("event is required")
				}
				return nil
			})
	}

	validateTimecode := func(s string) error {
		_, err := gamelog.ParseTimecode(s)
		return err
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewNote().Title(title),

			huh.NewSelect[string]().
				Title("Player").
				Options(playerOptions...).
				Value(&result.PlayerID),

			eventField,

			huh.NewInput().
				Title("Inpoint").
				Description("hh:mm:ss").
				Value(&result.Inpoint).
				Validate(validateTimecode),

			huh.NewInput().
				Title("Outpoint").
				Description("hh:mm:ss, after inpoint").
				Value(&result.Outpoint).
				Validate(func(s string) error {
					out, err := gamelog.ParseTimecode(s)
					if err != nil {
						return err
					}
					if in, err := gamelog.ParseTimecode(result.Inpoint); err == nil && out <= in {
						return gamelog.ErrInvalidRange
					}
					return nil
				}),
		),
	).WithTheme(Theme())

	return form
}
