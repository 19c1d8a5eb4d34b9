package service

import (
	"context"
	"sync"
	"time"

	"readiness/internal/model"
)

// memSessionCache is an in-memory cache.SessionCache for tests
type memSessionCache struct {
	mu       sync.Mutex
	sessions map[string]*model.Session
}

func newMemSessionCache() *memSessionCache {
	return &memSessionCache{sessions: make(map[string]*model.Session)}
}

func (c *memSessionCache) Set(ctx context.Context, session *model.Session) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	clone := *session
	c.sessions[session.ID] = &clone
	return nil
}

func (c *memSessionCache) Get(ctx context.Context, id string) (*model.Session, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	session, ok := c.sessions[id]
	if !ok {
		return nil, nil
	}
	clone := *session
	return &clone, nil
}

func (c *memSessionCache) Delete(ctx context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.sessions, id)
	return nil
}

// stubSender is a ReportSender recording calls for tests
type stubSender struct {
	mu    sync.Mutex
	calls int
	err   error
	delay time.Duration
	last  *model.ReportPayload
}

func (s *stubSender) SendReport(ctx context.Context, payload *model.ReportPayload) error {
	s.mu.Lock()
	s.calls++
	s.last = payload
	s.mu.Unlock()
	if s.delay > 0 {
		time.Sleep(s.delay)
	}
	return s.err
}

func (s *stubSender) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

// completeAnswers builds a full 24-answer set with every answer = value
func completeAnswers(value int) model.AnswerSet {
	answers := model.AnswerSet{}
	for s := 0; s < model.SectionCount; s++ {
		for q := 0; q < model.QuestionsPerSection; q++ {
			if err := answers.Record(s, q, value); err != nil {
				panic(err)
			}
		}
	}
	return answers
}

// answersWithTotal builds a complete answer set summing to total by filling
// question slots greedily in section/question order
func answersWithTotal(total int) model.AnswerSet {
	answers := completeAnswers(0)
	remaining := total
	for s := 0; s < model.SectionCount && remaining > 0; s++ {
		for q := 0; q < model.QuestionsPerSection && remaining > 0; q++ {
			v := remaining
			if v > model.MaxAnswerValue {
				v = model.MaxAnswerValue
			}
			if err := answers.Record(s, q, v); err != nil {
				panic(err)
			}
			remaining -= v
		}
	}
	return answers
}
