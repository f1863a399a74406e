package statblock

import (
	"testing"

	"github.com/vcrini/lazynechronica/internal/enemy"
)

func TestFlavorFraming(t *testing.T) {
	f := enemy.Flavor{Description: "Slow.", Tactics: "Swarm.", Roleplay: "Moan."}
	want := "Description:\nSlow.\n\nTactics:\nSwarm.\n\nRoleplay:\nMoan."
	if got := FlavorText(f); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestParseFlavor(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want enemy.Flavor
	}{
		{
			name: "framed",
			in:   "Description:\nSlow.\n\nTactics:\nSwarm.\n\nRoleplay:\nMoan.",
			want: enemy.Flavor{Description: "Slow.", Tactics: "Swarm.", Roleplay: "Moan."},
		},
		{
			name: "surrounding whitespace",
			in:   "\n  Description:\n Slow. \n\nTactics:\nSwarm.\n\nRoleplay:\nMoan.\n\n",
			want: enemy.Flavor{Description: "Slow.", Tactics: "Swarm.", Roleplay: "Moan."},
		},
		{
			name: "empty sections",
			in:   FlavorText(enemy.Flavor{Tactics: "Swarm."}),
			want: enemy.Flavor{Tactics: "Swarm."},
		},
		{
			name: "malformed tactics header",
			in:   "Description:\nSlow.\n\nTactic:\nSwarm.\n\nRoleplay:\nMoan.",
			want: enemy.Flavor{Description: "Slow.\n\nTactic:\nSwarm.", Roleplay: "Moan."},
		},
		{
			name: "paragraphs inside sections",
			in:   "Description:\nOne.\n\nTwo.\n\nTactics:\nSwarm.\n\n\nFlank.\n\nRoleplay:\nMoan.",
			want: enemy.Flavor{Description: "One.\n\nTwo.", Tactics: "Swarm.\n\n\nFlank.", Roleplay: "Moan."},
		},
		{
			name: "header word inside a paragraph",
			in:   "Description:\nSlow.\n\nTactics: none worth noting\n\nTactics:\nSwarm.\n\nRoleplay:\nMoan.",
			want: enemy.Flavor{Description: "Slow.\n\nTactics: none worth noting", Tactics: "Swarm.", Roleplay: "Moan."},
		},
		{
			name: "missing sections",
			in:   "Description:\nSlow.",
			want: enemy.Flavor{Description: "Slow."},
		},
		{
			name: "no headers",
			in:   "just some text",
			want: enemy.Flavor{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseFlavor(tt.in); got != tt.want {
				t.Fatalf("expected %+v, got %+v", tt.want, got)
			}
		})
	}
}

func TestFlavorRoundTrip(t *testing.T) {
	tests := []enemy.Flavor{
		enemy.Default().Flavor,
		{Description: "Para one.\n\nPara two.", Tactics: "Swarm.", Roleplay: "Moan."},
		{Description: "A.\n\nB.\n\nC.", Tactics: "First.\n\nSecond.", Roleplay: "Low.\n\nHigh."},
		{Description: "Only description.\n\nStill description."},
		{},
	}
	for _, f := range tests {
		if got := ParseFlavor(FlavorText(f)); got != f {
			t.Fatalf("expected %+v, got %+v", f, got)
		}
	}
}
