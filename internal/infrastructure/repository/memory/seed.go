package memory

import (
	"time"

	"github.com/qazleague/cup-service/internal/domain/bracket"
	"github.com/qazleague/cup-service/internal/domain/game"
	"github.com/qazleague/cup-service/internal/domain/participant"
	"github.com/qazleague/cup-service/internal/domain/season"
	"github.com/qazleague/cup-service/internal/domain/stage"
)

// SeedData is the demo dataset the service runs on without a database:
// one cup season with a two-group stage and a knockout phase played up
// to the final.
type SeedData struct {
	Seasons      []season.Season
	Stages       []stage.Stage
	Games        []game.Game
	Participants []participant.Participant
	Brackets     []bracket.StoredEntry
}

const seedSeasonID = 1

func Seed() SeedData {
	teams := []game.TeamRef{
		{ID: 1, Name: "Астана", NameKZ: "Астана", NameEN: "Astana", LogoURL: "https://cdn.qazleague.kz/logos/astana.png"},
		{ID: 2, Name: "Кайрат", NameKZ: "Қайрат", NameEN: "Kairat", LogoURL: "https://cdn.qazleague.kz/logos/kairat.png"},
		{ID: 3, Name: "Тобол", NameKZ: "Тобыл", NameEN: "Tobol", LogoURL: "https://cdn.qazleague.kz/logos/tobol.png"},
		{ID: 4, Name: "Ордабасы", NameKZ: "Ордабасы", NameEN: "Ordabasy", LogoURL: "https://cdn.qazleague.kz/logos/ordabasy.png"},
		{ID: 5, Name: "Актобе", NameKZ: "Ақтөбе", NameEN: "Aktobe", LogoURL: "https://cdn.qazleague.kz/logos/aktobe.png"},
		{ID: 6, Name: "Шахтер", NameKZ: "Шахтёр", NameEN: "Shakhter", LogoURL: "https://cdn.qazleague.kz/logos/shakhter.png"},
		{ID: 7, Name: "Атырау", NameKZ: "Атырау", NameEN: "Atyrau", LogoURL: "https://cdn.qazleague.kz/logos/atyrau.png"},
		{ID: 8, Name: "Жетысу", NameKZ: "Жетісу", NameEN: "Zhetysu", LogoURL: "https://cdn.qazleague.kz/logos/zhetysu.png"},
	}
	team := func(id int64) *game.TeamRef {
		for i := range teams {
			if teams[i].ID == id {
				ref := teams[i]
				return &ref
			}
		}
		return nil
	}

	seasons := []season.Season{
		{
			ID:                 seedSeasonID,
			Name:               "Кубок Казахстана 2026",
			NameKZ:             "Қазақстан Кубогы 2026",
			NameEN:             "Kazakhstan Cup 2026",
			ChampionshipName:   "Кубок Казахстана",
			ChampionshipNameKZ: "Қазақстан Кубогы",
			ChampionshipNameEN: "Kazakhstan Cup",
			DateStart:          time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC),
			DateEnd:            time.Date(2026, time.October, 31, 0, 0, 0, 0, time.UTC),
		},
	}

	stages := []stage.Stage{
		{ID: 101, SeasonID: seedSeasonID, Name: "Группа A", NameKZ: "A тобы", NameEN: "Group A", SortOrder: 1},
		{ID: 102, SeasonID: seedSeasonID, Name: "Группа B", NameKZ: "B тобы", NameEN: "Group B", SortOrder: 2},
		{ID: 103, SeasonID: seedSeasonID, Name: "Полуфинал", NameKZ: "Жартылай финал", NameEN: "Semi-final", SortOrder: 3},
		{ID: 104, SeasonID: seedSeasonID, Name: "За 3-е место", NameKZ: "Үшінші орын", NameEN: "3rd place match", SortOrder: 4},
		{ID: 105, SeasonID: seedSeasonID, Name: "Финал", NameKZ: "Финал", NameEN: "Final", SortOrder: 5},
	}

	score := func(v int) *int { return &v }
	stageID := func(v int64) *int64 { return &v }
	finished := func(id int64, stg int64, d time.Time, home, away int64, hs, as int) game.Game {
		return game.Game{
			ID: id, SeasonID: seedSeasonID, StageID: stageID(stg),
			Date: d, Time: "18:00",
			HomeTeam: team(home), AwayTeam: team(away),
			HomeScore: score(hs), AwayScore: score(as),
			RawStatus: "finished",
		}
	}

	april := func(d int) time.Time { return time.Date(2026, time.April, d, 0, 0, 0, 0, time.UTC) }
	games := []game.Game{
		// group A: 1, 2, 3, 4
		finished(1001, 101, april(4), 1, 2, 2, 1),
		finished(1002, 101, april(4), 3, 4, 0, 0),
		finished(1003, 101, april(11), 1, 3, 3, 0),
		finished(1004, 101, april(11), 2, 4, 1, 1),
		finished(1005, 101, april(18), 4, 1, 0, 2),
		finished(1006, 101, april(18), 2, 3, 2, 0),
		// group B: 5, 6, 7, 8
		finished(1007, 102, april(5), 5, 6, 1, 0),
		finished(1008, 102, april(5), 7, 8, 2, 2),
		finished(1009, 102, april(12), 5, 7, 2, 1),
		finished(1010, 102, april(12), 6, 8, 3, 1),
		finished(1011, 102, april(19), 8, 5, 0, 1),
		finished(1012, 102, april(19), 6, 7, 1, 0),
		// semifinals
		finished(1013, 103, time.Date(2026, time.May, 10, 0, 0, 0, 0, time.UTC), 1, 6, 1, 0),
		finished(1014, 103, time.Date(2026, time.May, 10, 0, 0, 0, 0, time.UTC), 5, 2, 0, 2),
		// third place, scheduled
		{
			ID: 1015, SeasonID: seedSeasonID, StageID: stageID(104),
			Date: time.Date(2026, time.May, 23, 0, 0, 0, 0, time.UTC), Time: "16:00",
			HomeTeam: team(6), AwayTeam: team(5),
			RawStatus: "created",
		},
		// final, scheduled
		{
			ID: 1016, SeasonID: seedSeasonID, StageID: stageID(105),
			Date: time.Date(2026, time.May, 24, 0, 0, 0, 0, time.UTC), Time: "20:00",
			HomeTeam: team(1), AwayTeam: team(2),
			RawStatus: "created",
		},
	}

	participants := make([]participant.Participant, 0, len(teams))
	for i, t := range teams {
		group := "A"
		if t.ID > 4 {
			group = "B"
		}
		participants = append(participants, participant.Participant{
			ID:          int64(i + 1),
			SeasonID:    seedSeasonID,
			TeamID:      t.ID,
			TeamName:    t.Name,
			TeamNameKZ:  t.NameKZ,
			TeamNameEN:  t.NameEN,
			TeamLogoURL: t.LogoURL,
			GroupName:   group,
		})
	}

	return SeedData{
		Seasons:      seasons,
		Stages:       stages,
		Games:        games,
		Participants: participants,
		Brackets:     nil, // knockout view is synthesized from the schedule
	}
}
