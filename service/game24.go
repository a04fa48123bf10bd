package service

import (
	"context"
	"fmt"
	"time"

	"card24/dto"
	"card24/entities"
	"card24/game24"
	"card24/repository"

	"go.uber.org/zap"
)

// GameService 在核心引擎之上处理请求参数和游戏记录
type GameService struct {
	engine *game24.Engine
	store  repository.GameStore
	ttl    time.Duration
	log    *zap.Logger
	now    func() time.Time
}

func NewGameService(engine *game24.Engine, store repository.GameStore, ttl time.Duration, log *zap.Logger) *GameService {
	if log == nil {
		log = zap.NewNop()
	}
	return &GameService{
		engine: engine,
		store:  store,
		ttl:    ttl,
		log:    log,
		now:    time.Now,
	}
}

// NewGame 发牌并保存游戏记录
func (s *GameService) NewGame(ctx context.Context, req dto.NewGameRequest) (dto.NewGameResponse, error) {
	mode, err := game24.ParseMode(req.Mode)
	if err != nil {
		return dto.NewGameResponse{}, err
	}

	deal, err := s.engine.NewGame(mode, req.OnlySolvable)
	if err != nil {
		return dto.NewGameResponse{}, fmt.Errorf("发牌失败: %w", err)
	}

	gameID := newGameID()
	cards := deal.Cards.Strings()
	err = s.store.SaveGame(ctx, entities.GameInfo{
		GameID:    gameID,
		Mode:      string(mode),
		Cards:     entities.JoinCards(cards),
		Target:    deal.Target,
		CreatedAt: s.now().Unix(),
	}, s.ttl)
	if err != nil {
		return dto.NewGameResponse{}, err
	}

	s.log.Debug("新游戏",
		zap.String("game_id", gameID),
		zap.String("mode", string(mode)),
		zap.Strings("cards", cards),
		zap.Bool("has_solution", deal.HasSolution))

	return dto.NewGameResponse{
		GameID:      gameID,
		Mode:        string(mode),
		Cards:       cards,
		Target:      deal.Target,
		HasSolution: deal.HasSolution,
		Solutions:   nonNil(deal.Solutions),
	}, nil
}

// GetGame 读取游戏记录，不包含解
func (s *GameService) GetGame(ctx context.Context, gameID string) (dto.GameInfo, error) {
	info, err := s.store.GetGame(ctx, gameID)
	if err != nil {
		return dto.GameInfo{}, err
	}
	return dto.GameInfo{
		GameID:    info.GameID,
		Mode:      info.Mode,
		Cards:     info.CardList(),
		Target:    info.Target,
		CreatedAt: info.CreatedAt,
	}, nil
}

// Verify 校验答案。带 game_id 时以存储的手牌和目标值为准
func (s *GameService) Verify(ctx context.Context, req dto.VerifyRequest) (dto.VerifyResponse, error) {
	cards, target := req.Cards, req.Target
	if req.GameID != "" {
		info, err := s.store.GetGame(ctx, req.GameID)
		if err != nil {
			return dto.VerifyResponse{}, err
		}
		cards, target = info.CardList(), info.Target
	}
	if target <= 0 {
		return dto.VerifyResponse{}, fmt.Errorf("%w: 缺少目标值", game24.ErrInvalidInput)
	}
	hand, err := game24.ParseHand(cards)
	if err != nil {
		return dto.VerifyResponse{}, err
	}

	correct := s.engine.Verify(req.Expression, hand, target)
	s.log.Debug("校验答案",
		zap.String("game_id", req.GameID),
		zap.String("expression", req.Expression),
		zap.Bool("correct", correct))

	return dto.VerifyResponse{
		Correct:    correct,
		Expression: req.Expression,
		Cards:      hand.Strings(),
		Target:     target,
	}, nil
}

// Solutions 求解
func (s *GameService) Solutions(ctx context.Context, req dto.SolutionsRequest) (dto.SolutionsResponse, error) {
	hand, err := game24.ParseHand(req.Cards)
	if err != nil {
		return dto.SolutionsResponse{}, err
	}
	res, err := s.engine.Solutions(hand, req.Target)
	if err != nil {
		return dto.SolutionsResponse{}, err
	}
	return dto.SolutionsResponse{
		Solutions:   nonNil(res.Solutions),
		HasSolution: res.HasSolution,
	}, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
