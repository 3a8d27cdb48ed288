package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/velmark/screenhunt/internal/model"
	"github.com/velmark/screenhunt/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	players     map[model.PlayerID]*model.Player
	submissions map[model.SubmissionID]*model.Submission
	nextID      model.SubmissionID
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		players:     make(map[model.PlayerID]*model.Player),
		submissions: make(map[model.SubmissionID]*model.Submission),
		nextID:      1,
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Player operations

func (s *Storage) CreatePlayer(ctx context.Context, player *model.Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.players[player.ID]; ok {
		return model.ErrPlayerExists
	}
	stored := *player
	s.players[player.ID] = &stored
	return nil
}

func (s *Storage) GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	player, ok := s.players[id]
	if !ok {
		return nil, model.ErrPlayerNotFound
	}
	copied := *player
	return &copied, nil
}

func (s *Storage) SetDisqualified(ctx context.Context, id model.PlayerID, disqualified bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	player, ok := s.players[id]
	if !ok {
		return model.ErrPlayerNotFound
	}
	player.Disqualified = disqualified
	for _, sub := range s.submissions {
		if sub.Owner == id {
			sub.Valid = !disqualified
		}
	}
	return nil
}

func (s *Storage) PlayerCount(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.players), nil
}

// Submission operations

func (s *Storage) CreateSubmission(ctx context.Context, sub *model.Submission) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	sub.ID = s.nextID
	s.nextID++
	stored := *sub
	s.submissions[stored.ID] = &stored
	return nil
}

func (s *Storage) GetSubmission(ctx context.Context, id model.SubmissionID) (*model.Submission, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sub, ok := s.submissions[id]
	if !ok {
		return nil, model.ErrSubmissionNotFound
	}
	copied := *sub
	return &copied, nil
}

func (s *Storage) SubmissionsByOwner(ctx context.Context, owner model.PlayerID) ([]*model.Submission, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var subs []*model.Submission
	for _, sub := range s.submissions {
		if sub.Owner == owner {
			copied := *sub
			subs = append(subs, &copied)
		}
	}
	// Newest first; IDs break ties for a stable order
	sort.Slice(subs, func(i, j int) bool {
		if !subs[i].SubmittedAt.Equal(subs[j].SubmittedAt) {
			return subs[i].SubmittedAt.After(subs[j].SubmittedAt)
		}
		return subs[i].ID > subs[j].ID
	})
	return subs, nil
}

func (s *Storage) SubmissionOrdinal(ctx context.Context, owner model.PlayerID, id model.SubmissionID) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	target, ok := s.submissions[id]
	if !ok {
		return 1, nil
	}
	earlier := 0
	for _, sub := range s.submissions {
		if sub.Owner == owner && sub.SubmittedAt.Before(target.SubmittedAt) {
			earlier++
		}
	}
	return earlier + 1, nil
}

func (s *Storage) SetApproval(ctx context.Context, id model.SubmissionID, approval model.Approval) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	sub, ok := s.submissions[id]
	if !ok {
		return model.ErrSubmissionNotFound
	}
	sub.Approval = approval
	return nil
}

// Reporting operations

func (s *Storage) Leaderboard(ctx context.Context) ([]model.LeaderboardEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var entries []model.LeaderboardEntry
	for _, player := range s.players {
		if player.Disqualified {
			continue
		}
		count := 0
		for _, sub := range s.submissions {
			if sub.Owner == player.ID && sub.Valid {
				count++
			}
		}
		entries = append(entries, model.LeaderboardEntry{
			Identity:   player.ID,
			Nickname:   player.Nickname,
			ValidCount: count,
		})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].ValidCount != entries[j].ValidCount {
			return entries[i].ValidCount > entries[j].ValidCount
		}
		return entries[i].Identity < entries[j].Identity
	})
	return entries, nil
}

func (s *Storage) ApprovedStats(ctx context.Context) ([]model.ApprovedStat, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var stats []model.ApprovedStat
	for _, player := range s.players {
		if player.Disqualified {
			continue
		}
		count := 0
		for _, sub := range s.submissions {
			if sub.Owner == player.ID && sub.Valid && sub.Approval == model.ApprovalApproved {
				count++
			}
		}
		if count == 0 {
			continue
		}
		stats = append(stats, model.ApprovedStat{
			Identity:      player.ID,
			Nickname:      player.Nickname,
			StaticID:      player.StaticID,
			ApprovedCount: count,
		})
	}
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].ApprovedCount != stats[j].ApprovedCount {
			return stats[i].ApprovedCount > stats[j].ApprovedCount
		}
		return stats[i].Identity < stats[j].Identity
	})
	return stats, nil
}

func (s *Storage) LeaderboardByApproved(ctx context.Context) ([]model.ApprovedLeaderboardEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var entries []model.ApprovedLeaderboardEntry
	for _, player := range s.players {
		if player.Disqualified {
			continue
		}
		total := 0
		approved := 0
		for _, sub := range s.submissions {
			if sub.Owner != player.ID || !sub.Valid {
				continue
			}
			total++
			if sub.Approval == model.ApprovalApproved {
				approved++
			}
		}
		if total == 0 {
			continue
		}
		entries = append(entries, model.ApprovedLeaderboardEntry{
			Identity:      player.ID,
			Nickname:      player.Nickname,
			TotalValid:    total,
			ApprovedCount: approved,
		})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].ApprovedCount != entries[j].ApprovedCount {
			return entries[i].ApprovedCount > entries[j].ApprovedCount
		}
		if entries[i].TotalValid != entries[j].TotalValid {
			return entries[i].TotalValid > entries[j].TotalValid
		}
		return entries[i].Identity < entries[j].Identity
	})
	return entries, nil
}

// Reset deletes all players and submissions.
// The submission ID counter is deliberately not rewound, matching the
// auto-increment behavior of the SQLite backend.
func (s *Storage) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.players = make(map[model.PlayerID]*model.Player)
	s.submissions = make(map[model.SubmissionID]*model.Submission)
	return nil
}
