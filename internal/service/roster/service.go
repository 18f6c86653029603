// Package roster serves member and PC snapshots to the presentation layer,
// with an optional redis cache in front of the backend reads. A nil redis
// client disables caching and every read goes straight through.
package roster

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/kristian0808/arcade-frontdesk/internal/domain"
	memberrepo "github.com/kristian0808/arcade-frontdesk/internal/repository/member"
	pcrepo "github.com/kristian0808/arcade-frontdesk/internal/repository/pc"
)

var rankingTimeframes = map[string]bool{
	"day": true, "week": true, "month": true, "year": true,
}

// Overview aggregates floor status for the dashboard stat cards.
type Overview struct {
	TotalPCs      int `json:"totalPcs"`
	Available     int `json:"available"`
	InUse         int `json:"inUse"`
	Offline       int `json:"offline"`
	Maintenance   int `json:"maintenance"`
	ActiveMembers int `json:"activeMembers"`
	OpenTabs      int `json:"openTabs"`
}

type Service struct {
	members memberrepo.Repository
	pcs     pcrepo.Repository
	cache   *redis.Client
	ttl     time.Duration
	logger  *log.Logger
}

// New builds the roster service. cache may be nil.
func New(members memberrepo.Repository, pcs pcrepo.Repository, cache *redis.Client, ttl time.Duration, logger *log.Logger) *Service {
	if ttl <= 0 {
		ttl = cacheTTL
	}
	return &Service{members: members, pcs: pcs, cache: cache, ttl: ttl, logger: logger}
}

func (s *Service) Members(ctx context.Context) ([]domain.Member, error) {
	var cached []domain.Member
	if s.cacheGet(ctx, keyMembers, &cached) {
		return cached, nil
	}
	members, err := s.members.List(ctx)
	if err != nil {
		return nil, err
	}
	s.cacheSet(ctx, keyMembers, members)
	return members, nil
}

// SearchMembers filters the directory by account or name substring. An empty
// query returns the full list, matching the dashboard's default view.
func (s *Service) SearchMembers(ctx context.Context, query string) ([]domain.Member, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return s.Members(ctx)
	}
	return s.members.Search(ctx, query)
}

func (s *Service) Member(ctx context.Context, id int) (*domain.Member, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: member id required", domain.ErrValidation)
	}
	return s.members.GetByID(ctx, id)
}

func (s *Service) Rankings(ctx context.Context, timeframe string) ([]domain.MemberRanking, error) {
	if timeframe == "" {
		timeframe = "month"
	}
	if !rankingTimeframes[timeframe] {
		return nil, fmt.Errorf("%w: unknown timeframe %q", domain.ErrValidation, timeframe)
	}
	return s.members.Rankings(ctx, timeframe)
}

func (s *Service) PCs(ctx context.Context) ([]domain.PC, error) {
	var cached []domain.PC
	if s.cacheGet(ctx, keyPCs, &cached) {
		return cached, nil
	}
	pcs, err := s.pcs.List(ctx)
	if err != nil {
		return nil, err
	}
	s.cacheSet(ctx, keyPCs, pcs)
	return pcs, nil
}

func (s *Service) PC(ctx context.Context, name string) (*domain.PC, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: pc name required", domain.ErrValidation)
	}
	return s.pcs.GetByName(ctx, name)
}

// Overview folds the PC list into floor-status counts.
func (s *Service) Overview(ctx context.Context) (*Overview, error) {
	pcs, err := s.PCs(ctx)
	if err != nil {
		return nil, err
	}
	ov := &Overview{TotalPCs: len(pcs)}
	for _, p := range pcs {
		switch p.Status {
		case domain.PCStatusAvailable:
			ov.Available++
		case domain.PCStatusInUse:
			ov.InUse++
			ov.ActiveMembers++
		case domain.PCStatusOffline:
			ov.Offline++
		case domain.PCStatusMaintenance:
			ov.Maintenance++
		}
		if p.HasActiveTab {
			ov.OpenTabs++
		}
	}
	return ov, nil
}

// Invalidate drops the cached snapshots. The push listener calls it when the
// backend announces member or PC changes.
func (s *Service) Invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, keyMembers, keyPCs).Err(); err != nil {
		s.logger.Printf("roster: cache invalidate failed: %v", err)
	}
}

func (s *Service) cacheGet(ctx context.Context, key string, out interface{}) bool {
	if s.cache == nil {
		return false
	}
	raw, err := s.cache.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			s.logger.Printf("roster: cache read %s failed: %v", key, err)
		}
		return false
	}
	if err := json.Unmarshal(raw, out); err != nil {
		s.logger.Printf("roster: cache decode %s failed: %v", key, err)
		return false
	}
	return true
}

func (s *Service) cacheSet(ctx context.Context, key string, v interface{}) {
	if s.cache == nil {
		return
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, key, raw, s.ttl).Err(); err != nil {
		s.logger.Printf("roster: cache write %s failed: %v", key, err)
	}
}
