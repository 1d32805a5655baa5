package pong

// Direction is the intended vertical movement of a paddle for one frame.
type Direction int

const (
	Up   Direction = -1
	None Direction = 0
	Down Direction = 1
)

// Board is the fixed playing field. Coordinates grow right and down from (0, 0).
type Board struct {
	Width  float64 `json:"width" toml:"width"`
	Height float64 `json:"height" toml:"height"`
}

var DefaultBoard = Board{Width: 500, Height: 300}

type Vector struct {
	X float64
	Y float64
}

type Ball struct {
	Pos    Vector
	Vel    Vector
	Radius float64
}

// Paddle position is its top left corner. Vel.Y is the paddle speed; Vel.X is unused.
type Paddle struct {
	Pos    Vector
	Vel    Vector
	Width  float64
	Height float64
}

// Snapshot is the complete state of one frame.
type Snapshot struct {
	Ball  Ball
	Left  Paddle
	Right Paddle
}

const (
	ballRadius   = 8
	ballSpeedX   = 0.3
	ballSpeedY   = 0.2
	paddleWidth  = 5
	paddleHeight = 80
	paddleSpeed  = 0.3
	paddleInset  = 20
)

func (b Board) Center() Vector {
	return Vector{X: b.Width / 2, Y: b.Height / 2}
}

// NewSnapshot returns the start state: ball in the middle heading right and down,
// paddles vertically centred near each edge.
func NewSnapshot(b Board) Snapshot {
	top := (b.Height - paddleHeight) / 2
	return Snapshot{
		Ball: Ball{
			Pos:    b.Center(),
			Vel:    Vector{X: ballSpeedX, Y: ballSpeedY},
			Radius: ballRadius,
		},
		Left: Paddle{
			Pos:    Vector{X: paddleInset, Y: top},
			Vel:    Vector{Y: paddleSpeed},
			Width:  paddleWidth,
			Height: paddleHeight,
		},
		Right: Paddle{
			Pos:    Vector{X: b.Width - paddleInset - paddleWidth, Y: top},
			Vel:    Vector{Y: paddleSpeed},
			Width:  paddleWidth,
			Height: paddleHeight,
		},
	}
}

func (p Paddle) Center() Vector {
	return Vector{X: p.Pos.X + p.Width/2, Y: p.Pos.Y + p.Height/2}
}

// OutOfBounds reports whether the ball has fully left the board horizontally.
func (ball Ball) OutOfBounds(b Board) bool {
	return ball.Pos.X < -ball.Radius || ball.Pos.X > b.Width+ball.Radius
}
