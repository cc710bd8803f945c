package options

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"tableflip.dev/xptrack/pkg/challenge"
)

// ChallengeOptions
type ChallengeOptions struct {
	Challenges []string
	File       string
	SeedXP     int
}

func AddChallengeArgs(cmd *cobra.Command, o *ChallengeOptions) {
	cmd.Flags().StringArrayVarP(&o.Challenges, "challenge", "c", nil,
		`A challenge as "Name:XP:Required", example: --challenge="Fenix kills:2500:5". Repeatable.`)
	cmd.Flags().StringVar(&o.File, "file", "",
		"Read the challenge set from a YAML or JSON file.")
	AddSeedArg(cmd, o)
}

func AddSeedArg(cmd *cobra.Command, o *ChallengeOptions) {
	cmd.Flags().IntVar(&o.SeedXP, "seed-xp", 0,
		"Initial total XP, kept until the next update.")
}

// Specs returns the challenge set named by the flags, in order.
func (o *ChallengeOptions) Specs() ([]challenge.Spec, error) {
	if o.File != "" && len(o.Challenges) > 0 {
		return nil, errors.New("use either --challenge or --file, not both")
	}
	if o.File != "" {
		return LoadChallengeFile(o.File)
	}
	if len(o.Challenges) == 0 {
		return nil, errors.New("requires at least one --challenge or a --file")
	}
	specs := make([]challenge.Spec, 0, len(o.Challenges))
	for _, c := range o.Challenges {
		s, err := ParseChallenge(c)
		if err != nil {
			return nil, err
		}
		specs = append(specs, s)
	}
	return specs, nil
}

// ParseChallenge parses "Name:XP:Required". The name may itself contain colons.
func ParseChallenge(v string) (challenge.Spec, error) {
	parts := strings.Split(v, ":")
	if len(parts) < 3 {
		return challenge.Spec{}, fmt.Errorf("challenge %q: want Name:XP:Required", v)
	}
	n := len(parts)
	xp, err := strconv.Atoi(strings.TrimSpace(parts[n-2]))
	if err != nil {
		return challenge.Spec{}, fmt.Errorf("challenge %q: xp: %w", v, err)
	}
	required, err := strconv.Atoi(strings.TrimSpace(parts[n-1]))
	if err != nil {
		return challenge.Spec{}, fmt.Errorf("challenge %q: required: %w", v, err)
	}
	return challenge.Spec{
		Name:     strings.TrimSpace(strings.Join(parts[:n-2], ":")),
		XP:       xp,
		Required: required,
	}, nil
}

type challengeFile struct {
	Challenges []challenge.Spec `yaml:"challenges"`
}

// LoadChallengeFile reads a list of challenges, either bare or under a
// "challenges" key. JSON files parse as YAML.
func LoadChallengeFile(path string) ([]challenge.Spec, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var list []challenge.Spec
	if err := yaml.Unmarshal(b, &list); err == nil {
		return list, nil
	}
	var doc challengeFile
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("challenge file %s: %w", path, err)
	}
	return doc.Challenges, nil
}
