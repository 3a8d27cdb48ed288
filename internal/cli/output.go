package cli

import (
	"encoding/json"
	"fmt"
	"os"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Player:
		o.printPlayer(v)
	case Submission:
		o.printSubmission(v)
	case SubmissionList:
		o.printSubmissionList(v)
	case PlayerCount:
		o.printPlayerCount(v)
	case Leaderboard:
		o.printLeaderboard(v)
	case ApprovedStats:
		o.printApprovedStats(v)
	case ApprovedLeaderboard:
		o.printApprovedLeaderboard(v)
	case EventStatus:
		o.printEventStatus(v)
	case PayoutSummary:
		o.printPayoutSummary(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Player response type (matches API)
type Player struct {
	Identity     string `json:"identity"`
	StaticID     string `json:"static_id"`
	Nickname     string `json:"nickname"`
	RegisteredAt string `json:"registered_at"`
	Disqualified bool   `json:"disqualified"`
}

// Submission response type
type Submission struct {
	ID          int64  `json:"id"`
	Owner       string `json:"owner"`
	ResourceURL string `json:"resource_url"`
	SubmittedAt string `json:"submitted_at"`
	Valid       bool   `json:"valid"`
	Approval    string `json:"approval"`
	Ordinal     int    `json:"ordinal,omitempty"`
}

// SubmissionList response type
type SubmissionList struct {
	Submissions []Submission `json:"submissions"`
}

// PlayerCount response type
type PlayerCount struct {
	PlayerCount int `json:"player_count"`
}

// LeaderboardEntry response type
type LeaderboardEntry struct {
	Identity   string `json:"identity"`
	Nickname   string `json:"nickname"`
	ValidCount int    `json:"valid_count"`
}

// Leaderboard response type
type Leaderboard struct {
	Entries []LeaderboardEntry `json:"entries"`
}

// ApprovedStat response type
type ApprovedStat struct {
	Identity      string `json:"identity"`
	Nickname      string `json:"nickname"`
	StaticID      string `json:"static_id"`
	ApprovedCount int    `json:"approved_count"`
}

// ApprovedStats response type
type ApprovedStats struct {
	Stats []ApprovedStat `json:"stats"`
}

// ApprovedLeaderboardEntry response type
type ApprovedLeaderboardEntry struct {
	Identity      string `json:"identity"`
	Nickname      string `json:"nickname"`
	TotalValid    int    `json:"total_valid"`
	ApprovedCount int    `json:"approved_count"`
}

// ApprovedLeaderboard response type
type ApprovedLeaderboard struct {
	Entries []ApprovedLeaderboardEntry `json:"entries"`
}

// EventStatus response type
type EventStatus struct {
	Active bool    `json:"active"`
	Start  *string `json:"start,omitempty"`
	End    *string `json:"end,omitempty"`
}

// PayoutLine response type
type PayoutLine struct {
	Identity      string `json:"identity"`
	Nickname      string `json:"nickname"`
	StaticID      string `json:"static_id"`
	ApprovedCount int    `json:"approved_count"`
	Amount        int64  `json:"amount"`
}

// PayoutSummary response type
type PayoutSummary struct {
	Lines         []PayoutLine `json:"lines"`
	TotalApproved int          `json:"total_approved"`
	TotalAmount   int64        `json:"total_amount"`
	AmountPerItem int64        `json:"amount_per_item"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printPlayer(p Player) {
	fmt.Printf("Player: %s (%s)\n", p.Nickname, p.Identity)
	fmt.Printf("Static ID: %s\n", p.StaticID)
	fmt.Printf("Registered: %s\n", p.RegisteredAt)
	if p.Disqualified {
		fmt.Println("Disqualified: yes")
	}
}

func (o *Output) printSubmission(s Submission) {
	fmt.Printf("Submission: %d\n", s.ID)
	fmt.Printf("Owner: %s\n", s.Owner)
	fmt.Printf("Resource: %s\n", s.ResourceURL)
	fmt.Printf("Submitted: %s\n", s.SubmittedAt)
	fmt.Printf("Approval: %s\n", s.Approval)
	if !s.Valid {
		fmt.Println("Valid: no")
	}
	if s.Ordinal > 0 {
		fmt.Printf("Ordinal: %d\n", s.Ordinal)
	}
}

func (o *Output) printSubmissionList(l SubmissionList) {
	fmt.Printf("Submissions (%d):\n", len(l.Submissions))
	for _, s := range l.Submissions {
		validStr := ""
		if !s.Valid {
			validStr = " [invalid]"
		}
		fmt.Printf("  #%d %s - %s (%s)%s\n", s.ID, s.SubmittedAt, s.ResourceURL, s.Approval, validStr)
	}
}

func (o *Output) printPlayerCount(c PlayerCount) {
	fmt.Printf("Registered players: %d\n", c.PlayerCount)
}

func (o *Output) printLeaderboard(l Leaderboard) {
	fmt.Printf("Leaderboard (%d):\n", len(l.Entries))
	for i, e := range l.Entries {
		fmt.Printf("  %d. %s (%s) - %d\n", i+1, e.Nickname, e.Identity, e.ValidCount)
	}
}

func (o *Output) printApprovedStats(s ApprovedStats) {
	fmt.Printf("Approved stats (%d):\n", len(s.Stats))
	for _, stat := range s.Stats {
		fmt.Printf("  %s (%s / %s) - %d approved\n", stat.Nickname, stat.Identity, stat.StaticID, stat.ApprovedCount)
	}
}

func (o *Output) printApprovedLeaderboard(l ApprovedLeaderboard) {
	fmt.Printf("Leaderboard by approved (%d):\n", len(l.Entries))
	for i, e := range l.Entries {
		fmt.Printf("  %d. %s (%s) - %d approved / %d valid\n", i+1, e.Nickname, e.Identity, e.ApprovedCount, e.TotalValid)
	}
}

func (o *Output) printEventStatus(e EventStatus) {
	activeStr := "closed"
	if e.Active {
		activeStr = "active"
	}
	fmt.Printf("Event: %s\n", activeStr)
	if e.Start != nil {
		fmt.Printf("Start: %s\n", *e.Start)
	}
	if e.End != nil {
		fmt.Printf("End: %s\n", *e.End)
	}
}

func (o *Output) printPayoutSummary(p PayoutSummary) {
	fmt.Printf("Payouts (%d per approved submission):\n", p.AmountPerItem)
	for _, line := range p.Lines {
		fmt.Printf("  %s (%s) - %d approved -> %d\n", line.Nickname, line.StaticID, line.ApprovedCount, line.Amount)
	}
	fmt.Printf("Total: %d across %d approved submissions\n", p.TotalAmount, p.TotalApproved)
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}
