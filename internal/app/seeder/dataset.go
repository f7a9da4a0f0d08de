package seeder

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/stagehype-backend/internal/domain"
)

// Account is a login created by the users phase.
type Account struct {
	Email    string          `yaml:"email"`
	Username string          `yaml:"username"`
	Name     string          `yaml:"name"`
	Password string          `yaml:"password"`
	Role     domain.UserRole `yaml:"role"`
	Bio      string          `yaml:"bio"`
	Skills   []string        `yaml:"skills"`
}

// FilmSeed describes an approved catalog entry.
type FilmSeed struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Genre       string `yaml:"genre"`
	Mood        string `yaml:"mood"`
	Year        int    `yaml:"year"`
	DurationMin int    `yaml:"duration_min"`
	Language    string `yaml:"language"`
}

// Dataset is everything the pipeline writes.
type Dataset struct {
	Accounts    []Account  `yaml:"accounts"`
	Films       []FilmSeed `yaml:"films"`
	CreditRoles []string   `yaml:"credit_roles"`

	// Donor is the email of the account that donates to the first
	// DonatedFilms films, picking each amount from DonationAmounts.
	Donor           string   `yaml:"donor"`
	DonatedFilms    int      `yaml:"donated_films"`
	DonationAmounts []string `yaml:"donation_amounts"`
}

// LoadDataset reads a YAML dataset. An empty path returns DefaultDataset.
func LoadDataset(path string) (*Dataset, error) {
	if path == "" {
		return DefaultDataset(), nil
	}

	var ds Dataset
	if err := cleanenv.ReadConfig(path, &ds); err != nil {
		return nil, fmt.Errorf("seeder dataset: read %s: %w", path, err)
	}
	if err := ds.Validate(); err != nil {
		return nil, fmt.Errorf("seeder dataset %s: %w", path, err)
	}
	return &ds, nil
}

// Validate checks references between sections of the dataset.
func (d *Dataset) Validate() error {
	if len(d.Artists()) == 0 && len(d.Films) > 0 {
		return fmt.Errorf("films need at least one artist account")
	}
	for _, a := range d.Accounts {
		if !a.Role.IsValid() {
			return fmt.Errorf("account %s: unknown role %q", a.Email, a.Role)
		}
	}
	if _, err := d.amounts(); err != nil {
		return err
	}
	if d.DonatedFilms > 0 {
		if d.Donor == "" {
			return fmt.Errorf("donor is required when donated_films is set")
		}
		if len(d.DonationAmounts) == 0 {
			return fmt.Errorf("donation_amounts is required when donated_films is set")
		}
	}
	return nil
}

// Artists returns the accounts that can own films, in dataset order.
func (d *Dataset) Artists() []Account {
	var out []Account
	for _, a := range d.Accounts {
		if a.Role.CanReceiveDonations() {
			out = append(out, a)
		}
	}
	return out
}

func (d *Dataset) amounts() ([]decimal.Decimal, error) {
	out := make([]decimal.Decimal, 0, len(d.DonationAmounts))
	for _, s := range d.DonationAmounts {
		v, err := decimal.NewFromString(s)
		if err != nil {
			return nil, fmt.Errorf("donation amount %q: %w", s, err)
		}
		out = append(out, v)
	}
	return out, nil
}

// DefaultDataset is the built-in demo catalog.
func DefaultDataset() *Dataset {
	return &Dataset{
		Accounts: []Account{
			{Email: "admin@stagehype.com", Username: "admin", Name: "Admin", Password: "admin123", Role: domain.UserRoleAdmin},
			{Email: "moderator@stagehype.com", Username: "moderator", Name: "Moderator", Password: "moderator123", Role: domain.UserRoleModerator},
			{
				Email: "sarah.chen@stagehype.com", Username: "sarah.chen", Name: "Sarah Chen", Password: "password123", Role: domain.UserRoleArtist,
				Bio:    "Independent filmmaker and cinematographer with 10+ years experience",
				Skills: []string{"Cinematography", "Directing", "Color Grading"},
			},
			{
				Email: "marcus.johnson@stagehype.com", Username: "marcus.johnson", Name: "Marcus Johnson", Password: "password123", Role: domain.UserRoleArtist,
				Bio:    "Award-winning director specializing in documentaries",
				Skills: []string{"Directing", "Storytelling", "Documentary"},
			},
			{
				Email: "elena.rodriguez@stagehype.com", Username: "elena.rodriguez", Name: "Elena Rodriguez", Password: "password123", Role: domain.UserRoleArtist,
				Bio:    "Visual effects artist and motion graphics designer",
				Skills: []string{"VFX", "Motion Graphics", "Animation"},
			},
			{
				Email: "david.kim@stagehype.com", Username: "david.kim", Name: "David Kim", Password: "password123", Role: domain.UserRoleArtist,
				Bio:    "Sound designer and composer for independent films",
				Skills: []string{"Sound Design", "Composition", "Audio Engineering"},
			},
			{
				Email: "amelia.wright@stagehype.com", Username: "amelia.wright", Name: "Amelia Wright", Password: "password123", Role: domain.UserRoleArtist,
				Bio:    "Screenwriter and producer",
				Skills: []string{"Screenwriting", "Producing", "Story Development"},
			},
			{Email: "viewer@stagehype.com", Username: "viewer", Name: "Viewer", Password: "viewer123", Role: domain.UserRoleViewer},
		},
		Films: []FilmSeed{
			{Title: "Neon Dreams", Genre: "Sci-Fi", Mood: "Intense", Year: 2025, DurationMin: 128, Language: "English",
				Description: "A cyberpunk thriller exploring identity in a digital world. Follow a hacker discovering a conspiracy that threatens to expose everyone's digital secrets."},
			{Title: "Mountain Echo", Genre: "Documentary", Mood: "Contemplative", Year: 2025, DurationMin: 95, Language: "English",
				Description: "A meditative documentary about mountain communities adapting to climate change."},
			{Title: "Last Conversation", Genre: "Drama", Mood: "Emotional", Year: 2024, DurationMin: 112, Language: "English",
				Description: "An intimate drama about two estranged siblings reconnecting after years apart."},
			{Title: "Pixel Rebellion", Genre: "Experimental", Mood: "Dark", Year: 2025, DurationMin: 38, Language: "No Dialogue",
				Description: "An experimental short blending live action with animation. A commentary on technology addiction."},
			{Title: "Urban Voices", Genre: "Documentary", Mood: "Inspiring", Year: 2025, DurationMin: 85, Language: "Multiple",
				Description: "A music documentary following street musicians in three major cities."},
			{Title: "The Waiting Room", Genre: "Thriller", Mood: "Suspenseful", Year: 2024, DurationMin: 98, Language: "English",
				Description: "A psychological thriller set in a waiting room where time works differently."},
			{Title: "Silent Running", Genre: "Action", Mood: "Intense", Year: 2025, DurationMin: 15, Language: "No Dialogue",
				Description: "An action short shot entirely without dialogue. A chase through abandoned industrial spaces."},
			{Title: "Fade to Black", Genre: "Crime", Mood: "Dark", Year: 2025, DurationMin: 105, Language: "English",
				Description: "A noir-style detective story with a twist."},
		},
		CreditRoles:     []string{domain.DefaultCreditRole, "CINEMATOGRAPHER", "PRODUCER", "EDITOR", "SOUND_DESIGNER"},
		Donor:           "viewer@stagehype.com",
		DonatedFilms:    5,
		DonationAmounts: []string{"5", "10", "20", "50", "100"},
	}
}
