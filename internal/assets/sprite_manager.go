package assets

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Request — спрайт, который нужно загрузить, и чем его заменить, если файла нет
type Request struct {
	Name     string
	Fallback func() image.Image
}

// HeroSprite возвращает имя файла спрайта героя или башни по номеру
func HeroSprite(num int) string {
	return fmt.Sprintf("fig/%d.png", num)
}

// EnemySprite возвращает имя файла спрайта врага по номеру варианта
func EnemySprite(variant int) string {
	return fmt.Sprintf("fig/alien%d.png", variant)
}

// SpriteManager управляет загрузкой и кэшированием изображений спрайтов.
// Сами изображения — image.Image, перевод в текстуры делает рендерер.
type SpriteManager struct {
	fsys    fs.FS
	logger  *zap.Logger
	mu      sync.Mutex
	images  map[string]image.Image
	missing map[string]bool
}

// NewSpriteManager создает новый экземпляр SpriteManager.
func NewSpriteManager(fsys fs.FS, logger *zap.Logger) *SpriteManager {
	return &SpriteManager{
		fsys:    fsys,
		logger:  logger,
		images:  make(map[string]image.Image),
		missing: make(map[string]bool),
	}
}

// LoadAll декодирует все запрошенные спрайты параллельно.
// Отсутствующие или битые файлы заменяются заглушками, ошибкой это не считается.
func (m *SpriteManager) LoadAll(ctx context.Context, requests []Request) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(4)

	for _, req := range requests {
		req := req
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			m.Load(req)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return fmt.Errorf("load sprites: %w", err)
	}
	m.logger.Info("sprites loaded", zap.Int("count", len(requests)), zap.Int("placeholders", len(m.Missing())))
	return nil
}

// Load загружает один спрайт, если он ещё не в кэше, и возвращает его
func (m *SpriteManager) Load(req Request) image.Image {
	m.mu.Lock()
	if img, ok := m.images[req.Name]; ok {
		m.mu.Unlock()
		return img
	}
	m.mu.Unlock()

	img, err := m.decode(req.Name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			m.logger.Warn("sprite file missing, using placeholder", zap.String("sprite", req.Name))
		} else {
			m.logger.Warn("sprite file unreadable, using placeholder", zap.String("sprite", req.Name), zap.Error(err))
		}
		img = req.Fallback()
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if cached, ok := m.images[req.Name]; ok {
		return cached
	}
	m.images[req.Name] = img
	if err != nil {
		m.missing[req.Name] = true
	}
	return img
}

func (m *SpriteManager) decode(name string) (image.Image, error) {
	f, err := m.fsys.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	return img, nil
}

// Get возвращает спрайт из кэша
func (m *SpriteManager) Get(name string) (image.Image, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	img, ok := m.images[name]
	return img, ok
}

// Missing возвращает имена спрайтов, замененных заглушками
func (m *SpriteManager) Missing() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	names := make([]string, 0, len(m.missing))
	for name := range m.missing {
		names = append(names, name)
	}
	return names
}

// Size возвращает размеры спрайта в пикселях
func (m *SpriteManager) Size(name string) (w, h int, ok bool) {
	img, ok := m.Get(name)
	if !ok {
		return 0, 0, false
	}
	b := img.Bounds()
	return b.Dx(), b.Dy(), true
}

// Placeholder рисует круг с «носом» слева: базовые спрайты смотрят влево.
func Placeholder(size int, c color.RGBA) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	r := float64(size) / 2
	nose := color.RGBA{255 - c.R, 255 - c.G, 255 - c.B, 255}
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx, dy := float64(x)+0.5-r, float64(y)+0.5-r
			if dx*dx+dy*dy > r*r {
				continue
			}
			if dx < -r/2 && dy*dy < r*r/16 {
				img.SetRGBA(x, y, nose)
			} else {
				img.SetRGBA(x, y, c)
			}
		}
	}
	return img
}

// Solid — заглушка фона, залитая одним цветом
func Solid(w, h int, c color.RGBA) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: c}, image.Point{}, draw.Src)
	return img
}
