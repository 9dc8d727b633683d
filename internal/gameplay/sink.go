package gameplay

import (
	"errors"

	"citadels-core/internal/commands"
	"citadels-core/internal/engine"
	"citadels-core/internal/rules"
)

// Specifier names the slot a command occupies within a turn.
type Specifier int

const (
	SpecIncome Specifier = iota
	SpecAction
	SpecAbility
	SpecBuild
)

var specNames = map[Specifier]string{
	SpecIncome:  "income",
	SpecAction:  "action",
	SpecAbility: "ability",
	SpecBuild:   "build",
}

func (s Specifier) String() string { return specNames[s] }

var (
	ErrActionNotTaken  = errors.New("primary action has not been taken")
	ErrTurnNotComplete = errors.New("a compulsory ability is still pending")
)

// CommandsSink is the only mutation path for one player's turn. It offers the
// currently legal commands by slot, executes picks, auto-fires compulsory
// non-interactive abilities when their window opens, and cancels speculative
// state of commands that fall off the table.
type CommandsSink struct {
	player *engine.Player
	game   *engine.Game

	actions   []commands.Command
	abilities []commands.Command
	income    *commands.CashIn
	build     *commands.Build

	possible map[Specifier][]commands.Command
	used     map[Specifier][]commands.Command
	done     bool
}

// NewCommandsSink opens the turn for the given player. Compulsory
// start-of-turn abilities fire before the sink is returned.
func NewCommandsSink(p *engine.Player, g *engine.Game) *CommandsSink {
	s := &CommandsSink{
		player:    p,
		game:      g,
		actions:   rules.PossibleActions(g),
		abilities: rules.CharacterWorkflow(p.Role()),
		used:      map[Specifier][]commands.Command{},
	}
	s.update()
	return s
}

// Possible returns the commands currently offered in one slot.
func (s *CommandsSink) Possible(spec Specifier) []commands.Command {
	out := make([]commands.Command, len(s.possible[spec]))
	copy(out, s.possible[spec])
	return out
}

// AllPossible returns every offered command across all slots.
func (s *CommandsSink) AllPossible() []commands.Command {
	var out []commands.Command
	for spec := SpecIncome; spec <= SpecBuild; spec++ {
		out = append(out, s.possible[spec]...)
	}
	return out
}

// Used returns the commands already executed in one slot this turn.
func (s *CommandsSink) Used(spec Specifier) []commands.Command {
	out := make([]commands.Command, len(s.used[spec]))
	copy(out, s.used[spec])
	return out
}

// Done reports whether the turn is over, either explicitly or because
// nothing is left to do.
func (s *CommandsSink) Done() bool {
	if s.done {
		return true
	}
	for _, cmds := range s.possible {
		if len(cmds) > 0 {
			return false
		}
	}
	return true
}

// Choices forwards to the command's selection offer. The command must be
// currently on the table.
func (s *CommandsSink) Choices(cmd commands.Command) ([]engine.Choice, error) {
	if _, ok := s.find(cmd); !ok {
		return nil, engine.ErrIllegalSelection
	}
	ic, ok := cmd.(commands.Interactive)
	if !ok {
		return nil, nil
	}
	return ic.Choices(s.player, s.game), nil
}

// Cancel reverses a command's speculative selection state.
func (s *CommandsSink) Cancel(cmd commands.Command) {
	if ic, ok := cmd.(commands.Interactive); ok {
		ic.Cancel(s.player, s.game)
	}
}

// Execute applies an offered command and re-evaluates the table. Executing a
// command restricted to end of turn finishes the turn.
func (s *CommandsSink) Execute(cmd commands.Command) error {
	spec, ok := s.find(cmd)
	if !ok {
		return engine.ErrIllegalSelection
	}
	if ic, isInteractive := cmd.(commands.Interactive); isInteractive && !ic.Ready() {
		return commands.ErrNotReady
	}
	if err := cmd.Apply(s.player, s.game); err != nil {
		return err
	}
	s.used[spec] = append(s.used[spec], cmd)
	if spec == SpecBuild {
		s.build = nil
	}
	if cmd.Restriction()&commands.OnEndTurn != 0 {
		s.finish()
		return nil
	}
	s.update()
	return nil
}

// EndTurn finishes the turn voluntarily. The primary action must have been
// taken and no compulsory ability may be pending.
func (s *CommandsSink) EndTurn() error {
	if !s.actionTaken() {
		return ErrActionNotTaken
	}
	for _, cmd := range s.possible[SpecAbility] {
		if cmd.Restriction()&commands.Compulsory != 0 {
			return ErrTurnNotComplete
		}
	}
	s.finish()
	return nil
}

func (s *CommandsSink) actionTaken() bool {
	return len(s.used[SpecAction]) > 0
}

func (s *CommandsSink) find(cmd commands.Command) (Specifier, bool) {
	for spec, cmds := range s.possible {
		for _, c := range cmds {
			if c == cmd {
				return spec, true
			}
		}
	}
	return 0, false
}

func (s *CommandsSink) isUsed(cmd commands.Command) bool {
	for _, cmds := range s.used {
		for _, c := range cmds {
			if c == cmd {
				return true
			}
		}
	}
	return false
}

// update rebuilds the offer table for the current turn phase and fires any
// compulsory non-interactive ability whose window has opened. Interactive
// commands that drop off the table are canceled so speculative deck state is
// restored.
func (s *CommandsSink) update() {
	prev := s.possible
	s.possible = map[Specifier][]commands.Command{}

	if len(s.used[SpecIncome]) == 0 {
		if n := rules.Income(s.player); n > 0 {
			if s.income == nil || s.income.Amount() != n {
				s.income = commands.NewCashIn(n, 0)
			}
			s.possible[SpecIncome] = []commands.Command{s.income}
		}
	}

	if !s.actionTaken() {
		s.possible[SpecAction] = s.actions
	}

	fired := false
	abilityUsed := len(s.used[SpecAbility]) > 0
	for _, cmd := range s.abilities {
		if s.isUsed(cmd) {
			continue
		}
		r := cmd.Restriction()
		if r&(commands.OnAfterAction|commands.OnEndTurn) != 0 && !s.actionTaken() {
			continue
		}
		ic, interactive := cmd.(commands.Interactive)
		if r&commands.Compulsory != 0 && !interactive {
			if err := cmd.Apply(s.player, s.game); err == nil {
				s.used[SpecAbility] = append(s.used[SpecAbility], cmd)
				fired = true
			}
			continue
		}
		// one discretionary ability per turn: using either Magician
		// command closes the slot for the other
		if abilityUsed && r&commands.Compulsory == 0 {
			continue
		}
		if interactive && len(ic.Choices(s.player, s.game)) == 0 {
			continue
		}
		s.possible[SpecAbility] = append(s.possible[SpecAbility], cmd)
	}

	if s.actionTaken() && len(s.used[SpecBuild]) < rules.BuildLimit(s.player.Role()) {
		if s.build == nil {
			s.build = commands.NewBuild()
		}
		if len(s.build.Choices(s.player, s.game)) > 0 {
			s.possible[SpecBuild] = []commands.Command{s.build}
		}
	}

	s.cancelDropped(prev)

	// an auto-fired ability may have changed hand, gold or deck
	if fired {
		s.update()
	}
}

func (s *CommandsSink) finish() {
	prev := s.possible
	s.possible = nil
	s.done = true
	s.cancelDropped(prev)
}

func (s *CommandsSink) cancelDropped(prev map[Specifier][]commands.Command) {
	for _, cmds := range prev {
		for _, cmd := range cmds {
			if s.isUsed(cmd) {
				continue
			}
			if _, stillOffered := s.find(cmd); stillOffered {
				continue
			}
			if ic, ok := cmd.(commands.Interactive); ok {
				ic.Cancel(s.player, s.game)
			}
		}
	}
}
