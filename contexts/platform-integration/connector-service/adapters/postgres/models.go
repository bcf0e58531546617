package postgresadapter

import (
	"encoding/json"
	"time"

	"clubtrack/contexts/platform-integration/connector-service/domain/profile"
	"clubtrack/contexts/platform-integration/connector-service/ports"
)

type memberModel struct {
	ID              string    `gorm:"column:id;primaryKey"`
	Name            string    `gorm:"column:name"`
	Batch           string    `gorm:"column:batch"`
	Role            string    `gorm:"column:role"`
	Approved        bool      `gorm:"column:approved"`
	JoinedAt        time.Time `gorm:"column:joined_at"`
	Platforms       []byte    `gorm:"column:platforms;type:jsonb"`
	TotalProblems   int       `gorm:"column:total_problems"`
	EasyProblems    int       `gorm:"column:easy_problems"`
	MediumProblems  int       `gorm:"column:medium_problems"`
	HardProblems    int       `gorm:"column:hard_problems"`
	WeeklyProblems  int       `gorm:"column:weekly_problems"`
	MonthlyProblems int       `gorm:"column:monthly_problems"`
	CurrentStreak   int       `gorm:"column:current_streak"`
	MaxStreak       int       `gorm:"column:max_streak"`
}

func (memberModel) TableName() string {
	return "members"
}

// platformDoc is the JSONB shape for one platform profile.
type platformDoc struct {
	Username       string    `json:"username"`
	Connected      bool      `json:"connected"`
	ProblemsSolved int       `json:"problems_solved"`
	Rating         int       `json:"rating"`
	MaxRating      int       `json:"max_rating,omitempty"`
	Rank           string    `json:"rank,omitempty"`
	MaxRank        string    `json:"max_rank,omitempty"`
	Stars          string    `json:"stars,omitempty"`
	EasySolved     int       `json:"easy_solved,omitempty"`
	MediumSolved   int       `json:"medium_solved,omitempty"`
	HardSolved     int       `json:"hard_solved,omitempty"`
	LastSynced     time.Time `json:"last_synced"`
}

func platformDocFromProfile(prof profile.Profile) platformDoc {
	return platformDoc{
		Username:       prof.Username,
		Connected:      prof.Connected,
		ProblemsSolved: prof.ProblemsSolved,
		Rating:         prof.Rating,
		MaxRating:      prof.MaxRating,
		Rank:           prof.Rank,
		MaxRank:        prof.MaxRank,
		Stars:          prof.Stars,
		EasySolved:     prof.EasySolved,
		MediumSolved:   prof.MediumSolved,
		HardSolved:     prof.HardSolved,
		LastSynced:     prof.LastSynced,
	}
}

func (d platformDoc) toProfile() profile.Profile {
	return profile.Profile{
		Username:       d.Username,
		Connected:      d.Connected,
		ProblemsSolved: d.ProblemsSolved,
		Rating:         d.Rating,
		MaxRating:      d.MaxRating,
		Rank:           d.Rank,
		MaxRank:        d.MaxRank,
		Stars:          d.Stars,
		EasySolved:     d.EasySolved,
		MediumSolved:   d.MediumSolved,
		HardSolved:     d.HardSolved,
		LastSynced:     d.LastSynced,
	}
}

func (m memberModel) platformDocs() (map[profile.Platform]platformDoc, error) {
	docs := make(map[profile.Platform]platformDoc)
	if len(m.Platforms) == 0 {
		return docs, nil
	}
	if err := json.Unmarshal(m.Platforms, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

func (m memberModel) toRecord() (ports.MemberRecord, error) {
	docs, err := m.platformDocs()
	if err != nil {
		return ports.MemberRecord{}, err
	}
	platforms := make(map[profile.Platform]profile.Profile, len(docs))
	for platform, doc := range docs {
		platforms[platform] = doc.toProfile()
	}
	return ports.MemberRecord{
		UserID:    m.ID,
		Name:      m.Name,
		Batch:     m.Batch,
		Role:      m.Role,
		Approved:  m.Approved,
		JoinedAt:  m.JoinedAt,
		Platforms: platforms,
		Stats: ports.StatsSnapshot{
			TotalProblems:   m.TotalProblems,
			EasyProblems:    m.EasyProblems,
			MediumProblems:  m.MediumProblems,
			HardProblems:    m.HardProblems,
			WeeklyProblems:  m.WeeklyProblems,
			MonthlyProblems: m.MonthlyProblems,
			CurrentStreak:   m.CurrentStreak,
			MaxStreak:       m.MaxStreak,
		},
	}, nil
}
