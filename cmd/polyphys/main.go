package main

import (
	_ "embed"
	"errors"
	"flag"
	"fmt"
	"image/color"
	"log"
	"math"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/koteyur/polyphys-go"
	"github.com/koteyur/polyphys-go/internal/scene"
)

const (
	screenWidth  = 800
	screenHeight = 600

	spawnSize    = 50
	spawnMinSide = 3
	spawnMaxSide = 8
)

var (
	outlineColor = color.RGBA{0xfc, 0x94, 0xaf, 0xff}
	contactColor = color.RGBA{0x40, 0xff, 0x40, 0xff}

	//go:embed default.yaml
	defaultScene []byte

	errQuit = errors.New("quit")
)

type Game struct {
	world    *polyphys.World
	rng      *rand.Rand
	paused   bool
	contacts bool
	verbose  bool
	buf      []polyphys.Vec2
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return errQuit
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.contacts = !g.contacts
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		g.spawn(polyphys.Vec2{X: float32(x), Y: float32(y)})
	}

	if !g.paused {
		tps := ebiten.MaxTPS()
		if tps <= 0 {
			tps = 60
		}
		g.world.Advance(1 / float32(tps))
	}
	return nil
}

// spawn drops a random regular polygon at pos.
func (g *Game) spawn(pos polyphys.Vec2) {
	sides := spawnMinSide + g.rng.Intn(spawnMaxSide-spawnMinSide+1)
	b := polyphys.Body{
		Position:        pos,
		Angle:           g.rng.Float32() * 2 * math.Pi,
		Restitution:     0.3,
		StaticFriction:  scene.DefaultStaticFriction,
		DynamicFriction: scene.DefaultDynamicFriction,
		Shape:           polyphys.NewRegularPolygon(sides, spawnSize),
	}
	b.SetMass(1)
	b.SetInertia(1000)
	id := g.world.AddBody(b)
	if g.verbose {
		log.Printf("spawned %d-gon at %v as body %d (%d bodies)", sides, pos, id.Index(), g.world.Len())
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.world.Each(func(_ polyphys.BodyID, b *polyphys.Body) {
		g.buf = b.WorldVertices(g.buf[:0])
		for i, u := range g.buf {
			v := g.buf[(i+1)%len(g.buf)]
			ebitenutil.DrawLine(screen, float64(u.X), float64(u.Y), float64(v.X), float64(v.Y), outlineColor)
		}
	})

	if g.contacts {
		for _, m := range g.world.Contacts() {
			for i := 0; i < m.ContactCount; i++ {
				p := m.Contacts[i]
				q := p.Add(m.Normal.Scale(10))
				ebitenutil.DrawLine(screen, float64(p.X), float64(p.Y), float64(q.X), float64(q.Y), contactColor)
			}
		}
	}

	status := ""
	if g.paused {
		status = " [paused]"
	}
	ebitenutil.DebugPrint(screen, fmt.Sprintf("Click to spawn, <space> to pause, <c> for contacts, <esc> to quit\nbodies: %d%s", g.world.Len(), status))
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

func main() {
	scenePath := flag.String("scene", "", "YAML scene file (default: floor and walls)")
	seed := flag.Int64("seed", time.Now().UnixNano(), "random seed for spawned shapes")
	verbose := flag.Bool("v", false, "log spawned bodies")
	flag.Parse()

	var (
		s   *scene.Scene
		err error
	)
	if *scenePath != "" {
		s, err = scene.Load(*scenePath)
	} else {
		s, err = scene.Parse(defaultScene)
	}
	if err != nil {
		log.Fatalf("loading scene: %v", err)
	}
	world, _, err := s.Build()
	if err != nil {
		log.Fatalf("building world: %v", err)
	}
	log.Printf("scene ready: %d bodies, step %.4fs, %d iterations", world.Len(), s.Config.TimeStep, s.Config.Iterations)

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("Polyphys")

	game := &Game{
		world:   world,
		rng:     rand.New(rand.NewSource(*seed)),
		verbose: *verbose,
	}
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, errQuit) {
		log.Fatal(err)
	}
}
