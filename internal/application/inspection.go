package app

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"sensor-inspector/internal/domain/entity"
	"sensor-inspector/internal/domain/port"
	"sensor-inspector/internal/infrastructure/rawio"
)

// InspectionRequest RAW-данные и настройки одного запуска детектора.
type InspectionRequest struct {
	Raw       io.Reader
	Width     int
	Height    int
	BitDepth  int
	Pattern   string
	Algorithm string
	Params    map[string]any
	Render    bool // нужна ли картинка с подсветкой
}

// InspectionOutput содержит результат поиска аномалий и картинку с подсветкой.
type InspectionOutput struct {
	Result      *entity.DetectionResult
	Highlighted []byte
}

type InspectionService struct {
	users    *UserService
	registry port.DetectorRegistry
	renderer port.OverlayRenderer
	logger   *zap.Logger
}

// NewInspectionService создаёт сервис, который управляет проверкой RAW-кадров.
func NewInspectionService(users *UserService, registry port.DetectorRegistry, renderer port.OverlayRenderer, logger *zap.Logger) *InspectionService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &InspectionService{
		users:    users,
		registry: registry,
		renderer: renderer,
		logger:   logger,
	}
}

// Algorithms возвращает доступные детекторы.
func (s *InspectionService) Algorithms() []port.Detector {
	if s.registry == nil {
		return nil
	}
	return s.registry.All()
}

// OverlayFileName имя файла с подсветкой в формате подключённого рендерера.
func (s *InspectionService) OverlayFileName() string {
	if s.renderer == nil || s.renderer.Extension() == "" {
		return "overlay.png"
	}
	return "overlay" + s.renderer.Extension()
}

// Inspect загружает RAW, запускает выбранный детектор и рисует подсветку.
// Либо полный результат, либо ошибка: частичных результатов нет.
func (s *InspectionService) Inspect(ctx context.Context, req InspectionRequest) (*InspectionOutput, error) {
	if s.registry == nil {
		return nil, errors.New("detector registry is not configured")
	}

	detector, err := s.registry.Get(req.Algorithm)
	if err != nil {
		return nil, err
	}
	pattern, err := entity.ParsePattern(req.Pattern)
	if err != nil {
		return nil, err
	}

	grid, err := rawio.Load(req.Raw, req.Width, req.Height, req.BitDepth)
	if err != nil {
		return nil, fmt.Errorf("load raw: %w", err)
	}

	start := time.Now()
	result, err := detector.Run(ctx, grid, pattern, req.Params)
	if err != nil {
		s.logger.Warn("Detection failed",
			zap.String("algorithm", detector.Name()),
			zap.Stringer("pattern", pattern),
			zap.Error(err))
		return nil, err
	}
	s.logger.Info("Detection finished",
		zap.String("algorithm", detector.Name()),
		zap.Stringer("pattern", pattern),
		zap.Int("width", grid.Width()),
		zap.Int("height", grid.Height()),
		zap.Int("total", result.Total),
		zap.Int("emitted", len(result.Overlays)),
		zap.Int("skipped_planes", result.Skipped),
		zap.Duration("elapsed", time.Since(start)))

	out := &InspectionOutput{Result: result}
	if req.Render && s.renderer != nil {
		highlighted, err := s.renderer.Render(grid, result.Overlays)
		if err != nil {
			// без картинки результат всё равно полный
			s.logger.Warn("Overlay rendering failed", zap.Error(err))
		} else {
			out.Highlighted = highlighted
		}
	}
	return out, nil
}

// InspectUpload проверяет загруженный пользователем RAW с его настройками
// и возвращает пользователя в главное меню.
func (s *InspectionService) InspectUpload(ctx context.Context, userID, chatID int64, raw []byte) (*InspectionOutput, error) {
	user, err := s.users.SetState(ctx, userID, chatID, entity.StateProcessing)
	if err != nil {
		return nil, err
	}
	defer func() {
		if _, err := s.users.SetState(ctx, userID, chatID, entity.StateMainMenu); err != nil {
			s.logger.Warn("Failed to reset user state", zap.Int64("user_id", userID), zap.Error(err))
		}
	}()

	session := user.Session
	return s.Inspect(ctx, InspectionRequest{
		Raw:       bytes.NewReader(raw),
		Width:     session.Width,
		Height:    session.Height,
		BitDepth:  session.BitDepth,
		Pattern:   session.Pattern,
		Algorithm: session.Algorithm,
		Params:    session.Params,
		Render:    true,
	})
}

// Configure меняет одну настройку сессии: геометрию, шаблон, алгоритм
// или параметр текущего детектора. Значение проверяется сразу.
func (s *InspectionService) Configure(ctx context.Context, userID, chatID int64, key, value string) (*entity.User, error) {
	key = strings.ToLower(strings.TrimSpace(key))
	value = strings.TrimSpace(value)

	return s.users.UpdateSession(ctx, userID, chatID, func(session *entity.Session) error {
		switch key {
		case "width", "height", "depth", "bit_depth":
			n, err := strconv.Atoi(value)
			if err != nil || n <= 0 {
				return fmt.Errorf("%s must be a positive integer, got %q", key, value)
			}
			switch key {
			case "width", "height":
				if n > rawio.MaxDimension {
					return fmt.Errorf("%w: %s %d exceeds %d", entity.ErrInvalidGrid, key, n, rawio.MaxDimension)
				}
				if key == "width" {
					session.Width = n
				} else {
					session.Height = n
				}
			default:
				if _, err := rawio.BytesPerSample(n); err != nil {
					return err
				}
				session.BitDepth = n
			}
		case "pattern":
			p, err := entity.ParsePattern(value)
			if err != nil {
				return err
			}
			session.Pattern = p.String()
		case "algorithm", "algo":
			d, err := s.registry.Get(value)
			if err != nil {
				return err
			}
			session.Algorithm = d.Key()
			schema := d.Parameters()
			for name := range session.Params {
				if _, ok := schema.Lookup(name); !ok {
					delete(session.Params, name)
				}
			}
		default:
			d, err := s.registry.Get(session.Algorithm)
			if err != nil {
				return err
			}
			spec, ok := d.Parameters().Lookup(key)
			if !ok {
				return fmt.Errorf("%w: %s has no parameter %q", entity.ErrParameterOutOfRange, d.Name(), key)
			}
			v, err := spec.Coerce(value)
			if err != nil {
				return err
			}
			session.Params[key] = v
		}
		return nil
	})
}
