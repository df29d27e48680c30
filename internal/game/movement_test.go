package game

import (
	"strings"
	"testing"

	"github.com/samdwyer/delve/internal/world"
)

func TestMoveBy(t *testing.T) {
	m := openMap(10, 10)
	player := hero(2, 2)
	blocker := orc(4, 2)
	s := fixture(t, m, nil, player, blocker)

	if !s.MoveBy(player.ID, 1, 0) {
		t.Fatal("move onto open floor failed")
	}
	if player.X != 3 || player.Y != 2 {
		t.Errorf("player at (%d,%d), want (3,2)", player.X, player.Y)
	}

	if s.MoveBy(player.ID, 1, 0) {
		t.Error("move onto a blocking actor should fail")
	}
	if s.MoveBy(player.ID, 0, -2) {
		t.Error("move into the border wall should fail")
	}
	if player.X != 3 || player.Y != 2 {
		t.Errorf("blocked moves changed position to (%d,%d)", player.X, player.Y)
	}
}

func TestMoveByCorpseDoesNotBlock(t *testing.T) {
	m := openMap(10, 10)
	player := hero(2, 2)
	corpse := orc(3, 2)
	s := fixture(t, m, nil, player, corpse)

	corpse.TakeDamage(100)
	if !s.MoveBy(player.ID, 1, 0) {
		t.Error("a dead actor should not block movement")
	}
}

func TestPlayerMoveOrAttack(t *testing.T) {
	m := openMap(10, 10)
	player := hero(2, 2)
	target := orc(3, 2)
	target.Fighter.Defense = 2
	s := fixture(t, m, nil, player, target)

	// power 5 against defense 2
	wantHP := []int{7, 4, 1, 0}
	for i, want := range wantHP {
		if got := s.PlayerMoveOrAttack(1, 0); got != PlayerAttacked {
			t.Fatalf("attack %d: result = %d, want PlayerAttacked", i+1, got)
		}
		if target.Fighter.HP != want {
			t.Errorf("attack %d: target hp = %d, want %d", i+1, target.Fighter.HP, want)
		}
		if player.X != 2 {
			t.Errorf("attack %d: attacker moved to x=%d", i+1, player.X)
		}
	}
	if target.Alive {
		t.Error("target should be dead")
	}

	msgs := s.Messages()
	if len(msgs) != 4 {
		t.Fatalf("messages = %d, want 4", len(msgs))
	}
	if !strings.HasSuffix(msgs[3], "orc dies!") {
		t.Errorf("last message = %q, want a death notice", msgs[3])
	}

	// The corpse no longer fights or blocks; the player walks onto it
	if got := s.PlayerMoveOrAttack(1, 0); got != PlayerMoved {
		t.Errorf("move onto corpse: result = %d, want PlayerMoved", got)
	}
	if player.X != 3 {
		t.Errorf("player x = %d, want 3", player.X)
	}
}

func TestPlayerMoveOrAttackWall(t *testing.T) {
	m := openMap(5, 5)
	player := hero(1, 1)
	s := fixture(t, m, nil, player)

	if got := s.PlayerMoveOrAttack(-1, 0); got != PlayerBumped {
		t.Errorf("result = %d, want PlayerBumped", got)
	}
	if player.X != 1 || player.Y != 1 {
		t.Errorf("player moved to (%d,%d)", player.X, player.Y)
	}
}

func TestMoveTowardsStep(t *testing.T) {
	tests := []struct {
		name         string
		tx, ty       int
		wantX, wantY int
		wantMoved    bool
	}{
		{"diagonal", 8, 8, 6, 6, true},
		{"straight east", 9, 5, 6, 5, true},
		{"steep rounds to vertical", 6, 8, 5, 6, true},
		{"shallow rounds to horizontal", 8, 6, 6, 5, true},
		{"same tile", 5, 5, 5, 5, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := openMap(12, 12)
			mon := orc(5, 5)
			s := fixture(t, m, nil, hero(1, 1), mon)

			moved := s.MoveTowards(mon.ID, tt.tx, tt.ty)
			if moved != tt.wantMoved {
				t.Errorf("moved = %v, want %v", moved, tt.wantMoved)
			}
			if mon.X != tt.wantX || mon.Y != tt.wantY {
				t.Errorf("monster at (%d,%d), want (%d,%d)", mon.X, mon.Y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestMoveTowardsBlockedIsNoop(t *testing.T) {
	m := openMap(12, 12)
	m.SetTile(6, 5, world.Wall)
	mon := orc(5, 5)
	s := fixture(t, m, nil, hero(1, 1), mon)

	if s.MoveTowards(mon.ID, 9, 5) {
		t.Error("step into a wall should not move")
	}
	if mon.X != 5 || mon.Y != 5 {
		t.Errorf("monster at (%d,%d), want (5,5)", mon.X, mon.Y)
	}
}
