package main

import (
	"errors"

	"github.com/mgnsk/slist"
	"go.uber.org/zap"
)

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	s, err := slist.FromSlice([]int{10, 20, 30})
	if err != nil {
		logger.Fatal("creating sequence", zap.Error(err))
	}

	s.PushFront(0)
	s.PushBack(40)

	if err := s.Insert(2, 15); err != nil {
		logger.Fatal("inserting value", zap.Error(err))
	}

	logger.Info("sequence", zap.Stringer("values", s), zap.Int("len", s.Len()))

	removed, err := s.Remove(s.Len() - 1)
	if err != nil {
		logger.Fatal("removing value", zap.Error(err))
	}

	logger.Info("removed back value", zap.Int("value", removed), zap.Stringer("values", s))

	// The index equal to the length is out of range for lookups.
	if _, err := s.Get(s.Len()); errors.Is(err, slist.ErrIndexOutOfRange) {
		logger.Warn("lookup failed", zap.Error(err))
	}

	s.RemoveValue(20)
	logger.Info("removed value 20", zap.Bool("contains", s.Contains(20)), zap.Stringer("values", s))
}
