package web

import (
	"errors"
	"testing"
)

func Test_createTournament_Validate(t *testing.T) {
	tests := []struct {
		name       string
		tournament createTournament
		wantErrs   []error
	}{
		{
			name:       "swiss",
			tournament: createTournament{Name: "Spring Open", Kind: "swiss", Rounds: 7},
		},
		{
			name:       "round robin weighted square",
			tournament: createTournament{Name: "Masters", Kind: "round-robin", Rounds: 9, TieBreak: "weighted-square"},
		},
		{
			name:       "missing name",
			tournament: createTournament{Kind: "swiss", Rounds: 7},
			wantErrs:   []error{ErrEmptyName},
		},
		{
			name:       "unknown kind and policy",
			tournament: createTournament{Name: "Cup", Kind: "knockout", Rounds: 3, TieBreak: "median"},
			wantErrs:   []error{ErrBadKind, ErrBadTieBreak},
		},
		{
			name:       "everything wrong",
			tournament: createTournament{},
			wantErrs:   []error{ErrEmptyName, ErrBadKind, ErrBadRounds},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.tournament.Validate()
			if (err != nil) != (len(tt.wantErrs) > 0) {
				t.Fatalf("Validate() error = %v, want %v", err, tt.wantErrs)
			}
			for _, want := range tt.wantErrs {
				if !errors.Is(err, want) {
					t.Errorf("Validate() error = %v, missing %v", err, want)
				}
			}
		})
	}
}

func Test_createPlayer_Validate(t *testing.T) {
	tests := []struct {
		name    string
		player  createPlayer
		wantErr bool
	}{
		{name: "ok", player: createPlayer{Name: "Anna", Rating: 1500}},
		{name: "blank name", player: createPlayer{Name: "  ", Rating: 1500}, wantErr: true},
		{name: "zero rating", player: createPlayer{Name: "Anna"}, wantErr: true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if err := tt.player.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func Test_addCompetitor_Validate(t *testing.T) {
	if err := (addCompetitor{}).Validate(); !errors.Is(err, ErrMissingPlayer) {
		t.Errorf("Validate() error = %v, want %v", err, ErrMissingPlayer)
	}
	if err := (addCompetitor{Name: "Anna"}).Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
	if err := (addCompetitor{PlayerID: 3}).Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}
