package settings

import "sync"

// Settings is the process-wide dashboard configuration record. It is
// kept in memory only and resets on restart; persistence is a known
// limitation carried over from the original dashboard. Not safe to
// share across instances.
type Settings struct {
	General       General       `json:"general"`
	Notifications Notifications `json:"notifications"`
	Integrations  Integrations  `json:"integrations"`
	Advanced      Advanced      `json:"advanced"`
}

type General struct {
	AppName        string `json:"appName"`
	DefaultProject string `json:"defaultProject"`
	Theme          string `json:"theme"`
	AutoSave       bool   `json:"autoSave"`
}

type Notifications struct {
	EmailNotifications bool `json:"emailNotifications"`
	TaskDeadlines      bool `json:"taskDeadlines"`
	ProjectUpdates     bool `json:"projectUpdates"`
	RiskAlerts         bool `json:"riskAlerts"`
}

type Integrations struct {
	APIKey           string `json:"apiKey"`
	WebhookURL       string `json:"webhookUrl"`
	SlackIntegration bool   `json:"slackIntegration"`
}

type Advanced struct {
	DebugMode       bool   `json:"debugMode"`
	DataRetention   int    `json:"dataRetention"`
	BackupFrequency string `json:"backupFrequency"`
}

// Patch replaces whole groups: a group present in the request body
// overwrites the stored group, absent groups are left alone.
type Patch struct {
	General       *General       `json:"general"`
	Notifications *Notifications `json:"notifications"`
	Integrations  *Integrations  `json:"integrations"`
	Advanced      *Advanced      `json:"advanced"`
}

type Store struct {
	mu      sync.RWMutex
	current Settings
}

func NewStore() *Store {
	return &Store{
		current: Settings{
			General: General{
				AppName:  "PM Assistant MVP",
				Theme:    "system",
				AutoSave: true,
			},
			Notifications: Notifications{
				EmailNotifications: true,
				TaskDeadlines:      true,
				ProjectUpdates:     false,
				RiskAlerts:         true,
			},
			Advanced: Advanced{
				DebugMode:       false,
				DataRetention:   365,
				BackupFrequency: "weekly",
			},
		},
	}
}

func (s *Store) Get() Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

func (s *Store) Update(patch Patch) Settings {
	s.mu.Lock()
	defer s.mu.Unlock()

	if patch.General != nil {
		s.current.General = *patch.General
	}
	if patch.Notifications != nil {
		s.current.Notifications = *patch.Notifications
	}
	if patch.Integrations != nil {
		s.current.Integrations = *patch.Integrations
	}
	if patch.Advanced != nil {
		s.current.Advanced = *patch.Advanced
	}

	return s.current
}
