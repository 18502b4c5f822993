package browse

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrMissingArg     = errors.New("missing argument")
)

type Op string

const (
	OpList     Op = "list"
	OpCategory Op = "category"
	OpPrice    Op = "price"
	OpRating   Op = "rating"
	OpReset    Op = "reset"
	OpFav      Op = "fav"
	OpFavs     Op = "favs"
	OpOpen     Op = "open"
	OpClose    Op = "close"
	OpFilters  Op = "filters"
	OpApply    Op = "apply"
	OpHelp     Op = "help"
	OpQuit     Op = "quit"
)

var aliases = map[string]Op{
	"ls":   OpList,
	"cat":  OpCategory,
	"like": OpFav,
	"show": OpOpen,
	"x":    OpClose,
	"?":    OpHelp,
	"q":    OpQuit,
	"exit": OpQuit,
}

type Command struct {
	Op   Op
	Text string
	Num  float64
	ID   int
}

// Effect tells the caller what to render after a command ran.
type Effect int

const (
	EffectNone Effect = iota
	EffectList
	EffectDetail
	EffectFavorites
	EffectHelp
	EffectQuit
)

func ParseCommand(line string) (Command, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Command{Op: OpList}, nil
	}

	op := Op(strings.ToLower(fields[0]))
	if alias, ok := aliases[string(op)]; ok {
		op = alias
	}
	args := fields[1:]

	switch op {
	case OpList, OpReset, OpFavs, OpClose, OpFilters, OpApply, OpHelp, OpQuit:
		return Command{Op: op}, nil
	case OpCategory:
		if len(args) == 0 {
			return Command{}, fmt.Errorf("%s: %w", op, ErrMissingArg)
		}
		return Command{Op: op, Text: args[0]}, nil
	case OpPrice, OpRating:
		if len(args) == 0 {
			return Command{}, fmt.Errorf("%s: %w", op, ErrMissingArg)
		}
		n, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return Command{}, fmt.Errorf("%s: %w", op, err)
		}
		return Command{Op: op, Num: n}, nil
	case OpFav, OpOpen:
		if len(args) == 0 {
			return Command{}, fmt.Errorf("%s: %w", op, ErrMissingArg)
		}
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return Command{}, fmt.Errorf("%s: %w", op, err)
		}
		return Command{Op: op, ID: id}, nil
	}

	return Command{}, fmt.Errorf("%w: %q", ErrUnknownCommand, fields[0])
}

func (p *Page[R]) Apply(cmd Command) (Effect, error) {
	switch cmd.Op {
	case OpList:
		return EffectList, nil
	case OpCategory:
		if err := p.SetCategory(cmd.Text); err != nil {
			return EffectNone, err
		}
		return EffectList, nil
	case OpPrice:
		if err := p.SetMaxPrice(cmd.Num); err != nil {
			return EffectNone, err
		}
		return EffectList, nil
	case OpRating:
		if err := p.SetMinRating(cmd.Num); err != nil {
			return EffectNone, err
		}
		return EffectList, nil
	case OpReset:
		p.ResetFilters()
		return EffectList, nil
	case OpFav:
		p.ToggleFavorite(cmd.ID)
		if _, open := p.Selected(); open {
			return EffectDetail, nil
		}
		return EffectList, nil
	case OpFavs:
		return EffectFavorites, nil
	case OpOpen:
		if err := p.Open(cmd.ID); err != nil {
			return EffectNone, err
		}
		return EffectDetail, nil
	case OpClose:
		p.Close()
		return EffectList, nil
	case OpFilters:
		p.OpenFilterPanel()
		return EffectNone, nil
	case OpApply:
		p.CloseFilterPanel()
		return EffectList, nil
	case OpHelp:
		return EffectHelp, nil
	case OpQuit:
		return EffectQuit, nil
	}
	return EffectNone, fmt.Errorf("%w: %q", ErrUnknownCommand, cmd.Op)
}

// FavoriteRecords resolves the favorite ids that exist in the page's
// catalog, in catalog order.
func (p *Page[R]) FavoriteRecords() []R {
	var out []R
	for _, r := range p.store.All() {
		if p.favorites.Has(r.RecordID()) {
			out = append(out, r)
		}
	}
	return out
}

const Help = `Commands:
  list                 show the filtered catalog
  category <name>      All, Mountains, Beaches, Desert, Forest, City
  price <n>            maximum price
  rating <n>           minimum rating (0-5)
  reset                restore default filters
  fav <id>             toggle favorite
  favs                 list favorites
  open <id>            show details
  close                close details
  filters | apply      open or apply the advanced filter panel
  help                 this text
  quit                 leave the page
`
