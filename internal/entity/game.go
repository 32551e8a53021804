package entity

// Player identifies a participant by a 1-indexed id in [1, NumPlayers].
// NoPlayer marks a board cell nobody has claimed.
type Player int

const NoPlayer Player = 0

// StatusNextPlayer is the public status code for a game that is not yet decided.
const StatusNextPlayer = 0

// Location is a 0-indexed (row, col) pair identifying one board cell.
type Location struct {
	Row int
	Col int
}

// Move is one parsed input triple: a player attempting a location.
type Move struct {
	Player Player
	Loc    Location
}

// MoveResult classifies the outcome of a single move attempt.
type MoveResult int

const (
	MoveWin MoveResult = iota
	MoveInvalid
	MoveDraw
	MoveContinue
)

func (that MoveResult) String() string {
	switch that {
	case MoveWin:
		return "win"
	case MoveInvalid:
		return "invalid"
	case MoveDraw:
		return "draw"
	case MoveContinue:
		return "continue"
	default:
		return "unknown"
	}
}

// Game holds the authoritative state of one match: the board, whose turn
// it is, and how many valid moves have been applied. The board is
// allocated once at construction and never resized; a claimed cell is
// never cleared or overwritten.
type Game struct {
	Board      []Player // row-major, length BoardSize*BoardSize
	BoardSize  int
	NumPlayers int
	Turn       Player // the player expected to move next, 1-indexed
	ValidMoves int
}

// NewGame creates an empty boardSize x boardSize game. Player 1 goes first.
func NewGame(boardSize, numPlayers int) *Game {
	return &Game{
		Board:      make([]Player, boardSize*boardSize),
		BoardSize:  boardSize,
		NumPlayers: numPlayers,
		Turn:       1,
	}
}

// Cell returns the owner of the cell at loc. loc must be in bounds.
func (that *Game) Cell(loc Location) Player {
	return that.Board[loc.Row*that.BoardSize+loc.Col]
}

// SetCell claims the cell at loc for player. loc must be in bounds.
func (that *Game) SetCell(loc Location, player Player) {
	that.Board[loc.Row*that.BoardSize+loc.Col] = player
}

// InBounds reports whether loc identifies a cell on the board.
func (that *Game) InBounds(loc Location) bool {
	return loc.Row >= 0 && loc.Row < that.BoardSize &&
		loc.Col >= 0 && loc.Col < that.BoardSize
}

// IsFull reports whether every cell on the board has been claimed.
func (that *Game) IsFull() bool {
	return that.ValidMoves == that.BoardSize*that.BoardSize
}

// AdvanceTurn moves the expected player to the next one, wrapping from
// NumPlayers back to 1.
func (that *Game) AdvanceTurn() {
	that.Turn = that.Turn%Player(that.NumPlayers) + 1
}

// TieStatus is the public status code for a drawn game. It is
// NumPlayers+1, distinct from every player id.
func (that *Game) TieStatus() int {
	return that.NumPlayers + 1
}
