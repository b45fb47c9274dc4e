package domain

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestSnapshotRoundTrip(t *testing.T) {
	g := New()
	if err := g.Place(A, 2, 4); err != nil {
		t.Fatalf("place failed: %v", err)
	}
	data, err := json.Marshal(g)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(data), `"....A..."`) || !strings.Contains(string(data), `"next":"B"`) {
		t.Fatalf("unexpected encoding %s", data)
	}
	var back Game
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back != g {
		t.Fatalf("round trip changed the game")
	}
	if err := back.Place(B, 2, 3); err != nil {
		t.Fatalf("restored game rejected a legal move: %v", err)
	}
}

func TestSnapshotFinishedGame(t *testing.T) {
	g := gameFrom(t, A, ".BA.....", "........", "........", "........",
		"........", "........", "........", "AB......")
	playMoves(t, &g, [][3]int{{int(A), 0, 0}, {int(A), 7, 2}})
	data, err := json.Marshal(g)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var back Game
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back.Status() != WinFor(A) || back != g {
		t.Fatalf("expected win(A) after round trip, got %v", back.Status())
	}
}

func TestSnapshotRejectsMalformed(t *testing.T) {
	good := `["........","........","........","...AB...","...BA...","........","........","........"]`
	cases := map[string]string{
		"short row":  `{"board":["...."],"next":"A","status":"in_progress"}`,
		"nine rows":  `{"board":["........","........","........","...AB...","...BA...","........","........","........","AAAAAAAA"],"next":"A","status":"in_progress"}`,
		"seven rows": `{"board":["........","........","........","...AB...","...BA...","........","........"],"next":"A","status":"in_progress"}`,
		"no board":   `{"next":"A","status":"in_progress"}`,
		"bad cell":   `{"board":["x.......","........","........","........","........","........","........","........"],"next":"A","status":"in_progress"}`,
		"bad next":   `{"board":` + good + `,"next":"C","status":"in_progress"}`,
		"empty next": `{"board":` + good + `,"next":"","status":"in_progress"}`,
		"bad status": `{"board":` + good + `,"next":"A","status":"done"}`,
		"no winner":  `{"board":` + good + `,"next":"A","status":"win"}`,
		"not an obj": `[1,2,3]`,
	}
	for name, in := range cases {
		g := New()
		err := json.Unmarshal([]byte(in), &g)
		if err == nil {
			t.Fatalf("%s: expected error", name)
		}
		if strings.Contains(name, "rows") || name == "no board" {
			if !strings.Contains(err.Error(), "rows") {
				t.Fatalf("%s: expected row count error, got %v", name, err)
			}
		}
		if g != New() {
			t.Fatalf("%s: failed decode modified the game", name)
		}
	}
}
