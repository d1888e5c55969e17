package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/mkondo/goban/internal/model"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Player:
		o.printPlayer(v)
	case AuthResult:
		o.printAuthResult(v)
	case GameState:
		o.printGameState(v)
	case GameList:
		o.printGameList(v)
	case MoveResult:
		o.printMoveResult(v)
	case Score:
		o.printScore(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Player response type (matches API)
type Player struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	IsGuest     bool   `json:"is_guest"`
}

// AuthResult combines player and token
type AuthResult struct {
	Player       Player `json:"player"`
	SessionToken string `json:"session_token"`
}

// Board response type
type Board struct {
	Size int      `json:"size"`
	Rows []string `json:"rows"`
}

// Captures response type
type Captures struct {
	Black int `json:"black"`
	White int `json:"white"`
}

// Score response type
type Score struct {
	Black  float64 `json:"black"`
	White  float64 `json:"white"`
	Winner string  `json:"winner"`
}

// GameState response type
type GameState struct {
	ID          string    `json:"id"`
	State       string    `json:"state"`
	Size        int       `json:"size"`
	Board       Board     `json:"board"`
	BlackPlayer string    `json:"black_player"`
	WhitePlayer string    `json:"white_player,omitempty"`
	VsComputer  bool      `json:"vs_computer"`
	Turn        string    `json:"turn"`
	Passes      int       `json:"passes"`
	Captures    Captures  `json:"captures"`
	Score       *Score    `json:"score,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// GameSummary response type
type GameSummary struct {
	ID          string    `json:"id"`
	Size        int       `json:"size"`
	BlackPlayer string    `json:"black_player"`
	CreatedAt   time.Time `json:"created_at"`
}

// GameList response type
type GameList struct {
	Games []GameSummary `json:"games"`
}

// ComputerAction response type
type ComputerAction struct {
	Type string `json:"type"`
	Col  int    `json:"col"`
	Row  int    `json:"row"`
}

// MoveResult response type
type MoveResult struct {
	Game            GameState        `json:"game"`
	ComputerActions []ComputerAction `json:"computer_actions,omitempty"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printPlayer(p Player) {
	guestStr := "no"
	if p.IsGuest {
		guestStr = "yes"
	}
	fmt.Printf("Player: %s (%s)\n", p.DisplayName, p.ID)
	fmt.Printf("Guest: %s\n", guestStr)
}

func (o *Output) printAuthResult(a AuthResult) {
	o.printPlayer(a.Player)
	fmt.Printf("Token: %s\n", a.SessionToken)
}

func (o *Output) printGameState(g GameState) {
	fmt.Printf("Game: %s\n", g.ID)
	fmt.Printf("State: %s\n", g.State)
	fmt.Printf("Black: %s\n", g.BlackPlayer)
	if g.WhitePlayer != "" {
		fmt.Printf("White: %s\n", g.WhitePlayer)
	}
	if g.VsComputer {
		fmt.Println("Opponent: computer")
	}
	fmt.Printf("Turn: %s\n", g.Turn)
	fmt.Printf("Captures: black %d, white %d\n", g.Captures.Black, g.Captures.White)
	if g.Passes > 0 {
		fmt.Printf("Consecutive passes: %d\n", g.Passes)
	}

	fmt.Println()
	o.printBoard(g.Board)

	if g.Score != nil {
		fmt.Println()
		o.printScore(*g.Score)
	}
}

func (o *Output) printBoard(b Board) {
	if len(b.Rows) == 0 {
		return
	}

	hoshi := starPoints(b.Size)

	// Print column headers
	fmt.Print("    ")
	for col := 0; col < b.Size; col++ {
		fmt.Printf("%2d ", col)
	}
	fmt.Println()

	// Print rows, marking empty star points with '+'
	for row, cells := range b.Rows {
		fmt.Printf("%2d  ", row)
		for col := 0; col < len(cells); col++ {
			c := cells[col]
			if c == '.' && hoshi[[2]int{col, row}] {
				c = '+'
			}
			fmt.Printf(" %c ", c)
		}
		fmt.Println()
	}
}

func starPoints(size int) map[[2]int]bool {
	hoshi := model.StarPoints(size)
	points := make(map[[2]int]bool, len(hoshi))
	for _, p := range hoshi {
		points[[2]int{p.Col, p.Row}] = true
	}
	return points
}

func (o *Output) printGameList(l GameList) {
	if len(l.Games) == 0 {
		fmt.Println("No open games")
		return
	}

	fmt.Printf("Open games (%d):\n", len(l.Games))
	for _, g := range l.Games {
		fmt.Printf("  %s  %dx%d  host=%s  created=%s\n",
			g.ID, g.Size, g.Size, g.BlackPlayer, g.CreatedAt.Format(time.RFC3339))
	}
}

func (o *Output) printMoveResult(m MoveResult) {
	for _, a := range m.ComputerActions {
		if a.Type == "pass" {
			fmt.Println("Computer passed")
		} else {
			fmt.Printf("Computer played %d,%d\n", a.Col, a.Row)
		}
	}
	if len(m.ComputerActions) > 0 {
		fmt.Println()
	}

	o.printGameState(m.Game)
}

func (o *Output) printScore(s Score) {
	fmt.Printf("Score: black %.1f, white %.1f\n", s.Black, s.White)
	fmt.Printf("Winner: %s\n", s.Winner)
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}
