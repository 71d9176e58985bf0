package plugin

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

func quietLogger() logrus.FieldLogger {
	logger, _ := test.NewNullLogger()
	return logger
}

func preparedProcessor(t *testing.T, sampleRate float64, maxBlock int, opts ...Option) *Processor {
	t.Helper()
	opts = append([]Option{WithLogger(quietLogger())}, opts...)
	p := New(NewStore(opts...), opts...)
	if err := p.Prepare(sampleRate, maxBlock); err != nil {
		t.Fatalf("Prepare: %v", err)
	}
	return p
}

func mustSet(t *testing.T, s *Store, id string, v float64) {
	t.Helper()
	if err := s.Set(id, v); err != nil {
		t.Fatalf("Set(%s, %v): %v", id, v, err)
	}
}
