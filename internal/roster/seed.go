package roster

import (
	"encoding/json"
	"fmt"
	"os"

	"example.com/extracurricular/internal/domain"
)

// DefaultCatalog returns the built-in Mergington High School activity
// catalog used when no seed file is configured.
func DefaultCatalog() []domain.Activity {
	return []domain.Activity{
		{
			Name:            "Chess Club",
			Description:     "Learn strategies and compete in chess tournaments",
			Schedule:        "Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: 12,
			Participants:    []string{"michael@mergington.edu", "daniel@mergington.edu"},
		},
		{
			Name:            "Programming Class",
			Description:     "Learn programming fundamentals and build software projects",
			Schedule:        "Tuesdays and Thursdays, 3:30 PM - 4:30 PM",
			MaxParticipants: 20,
			Participants:    []string{"emma@mergington.edu", "sophia@mergington.edu"},
		},
		{
			Name:            "Gym Class",
			Description:     "Physical education and sports activities",
			Schedule:        "Mondays, Wednesdays, Fridays, 2:00 PM - 3:00 PM",
			MaxParticipants: 30,
			Participants:    []string{"john@mergington.edu", "olivia@mergington.edu"},
		},
		{
			Name:            "Soccer Team",
			Description:     "Join the school soccer team and compete in local leagues",
			Schedule:        "Wednesdays and Fridays, 4:00 PM - 5:30 PM",
			MaxParticipants: 22,
			Participants:    []string{"lucas@mergington.edu", "mia@mergington.edu"},
		},
		{
			Name:            "Basketball Club",
			Description:     "Practice basketball skills and play friendly matches",
			Schedule:        "Tuesdays, 5:00 PM - 6:30 PM",
			MaxParticipants: 15,
			Participants:    []string{"liam@mergington.edu", "ava@mergington.edu"},
		},
		{
			Name:            "Art Club",
			Description:     "Explore painting, drawing, and other visual arts",
			Schedule:        "Thursdays, 3:30 PM - 5:00 PM",
			MaxParticipants: 18,
			Participants:    []string{"noah@mergington.edu", "isabella@mergington.edu"},
		},
		{
			Name:            "Drama Society",
			Description:     "Participate in school plays and acting workshops",
			Schedule:        "Mondays, 4:00 PM - 5:30 PM",
			MaxParticipants: 20,
			Participants:    []string{"ethan@mergington.edu", "charlotte@mergington.edu"},
		},
		{
			Name:            "Mathletes",
			Description:     "Compete in math competitions and solve challenging problems",
			Schedule:        "Wednesdays, 3:30 PM - 4:30 PM",
			MaxParticipants: 16,
			Participants:    []string{"amelia@mergington.edu", "benjamin@mergington.edu"},
		},
		{
			Name:            "Science Club",
			Description:     "Conduct experiments and explore scientific concepts",
			Schedule:        "Fridays, 2:00 PM - 3:30 PM",
			MaxParticipants: 14,
			Participants:    []string{"elijah@mergington.edu", "harper@mergington.edu"},
		},
	}
}

// seedActivity mirrors the JSON layout of a catalog seed file entry.
type seedActivity struct {
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// LoadCatalog reads a catalog from a JSON seed file.
func LoadCatalog(path string) ([]domain.Activity, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}

	var entries []seedActivity
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}

	catalog := make([]domain.Activity, 0, len(entries))
	for _, entry := range entries {
		if entry.Name == "" {
			return nil, fmt.Errorf("seed file entry missing name")
		}
		if entry.MaxParticipants <= 0 {
			return nil, fmt.Errorf("activity %q: max_participants must be positive", entry.Name)
		}
		if len(entry.Participants) > entry.MaxParticipants {
			return nil, fmt.Errorf("activity %q: seeded participants exceed capacity", entry.Name)
		}
		seen := make(map[string]struct{}, len(entry.Participants))
		for _, email := range entry.Participants {
			if _, dup := seen[email]; dup {
				return nil, fmt.Errorf("activity %q: duplicate participant %q", entry.Name, email)
			}
			seen[email] = struct{}{}
		}
		catalog = append(catalog, domain.Activity{
			Name:            entry.Name,
			Description:     entry.Description,
			Schedule:        entry.Schedule,
			MaxParticipants: entry.MaxParticipants,
			Participants:    entry.Participants,
		})
	}
	return catalog, nil
}
