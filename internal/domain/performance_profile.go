package domain

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// PerformanceProfile times the phases of one run request (series fetch,
// engine run, response shaping) so slow endpoints can be attributed.

const ContextProfileKey = "PERFORMANCE_PROFILE"

type PerformanceProfileEvent struct {
	Name      string    `json:"name"`
	ElapsedMs int64     `json:"elapsedMs"`
	Time      time.Time `json:"time"`
}

type PerformanceProfile struct {
	StartTime time.Time                 `json:"-"`
	Events    []PerformanceProfileEvent `json:"events"`
	TotalMs   int64                     `json:"totalMs"`
}

func NewProfile() (*PerformanceProfile, func()) {
	p := &PerformanceProfile{
		StartTime: time.Now(),
	}
	return p, p.End
}

func GetProfile(ctx context.Context) *PerformanceProfile {
	if p, ok := ctx.Value(ContextProfileKey).(*PerformanceProfile); ok {
		return p
	}
	return nil
}

func (p *PerformanceProfile) End() {
	p.TotalMs = time.Since(p.StartTime).Milliseconds()
}

func (p *PerformanceProfile) Add(name string) {
	if p == nil {
		return
	}
	now := time.Now()
	elapsed := now.Sub(p.StartTime).Milliseconds()
	if n := len(p.Events); n > 0 {
		elapsed = now.Sub(p.Events[n-1].Time).Milliseconds()
	}
	p.Events = append(p.Events, PerformanceProfileEvent{
		Name:      name,
		ElapsedMs: elapsed,
		Time:      now,
	})
}

func (p PerformanceProfile) ToJsonBytes() ([]byte, error) {
	bytes, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal performance profile: %w", err)
	}
	return bytes, nil
}
