package domain

// Contact is one generated lead.
type Contact struct {
	Name      string `json:"name"`
	Role      string `json:"role"`
	Company   string `json:"company"`
	Email     string `json:"email"`
	Instagram string `json:"instagram"`
}

// Client is one generated prospective customer.
type Client struct {
	BusinessName string `json:"businessName"`
	Niche        string `json:"niche"`
	Location     string `json:"location"`
	ContactName  string `json:"contactName"`
	Email        string `json:"email"`
	Instagram    string `json:"instagram"`
}

// SavedContactList is a contacts generation kept for later, newest first.
type SavedContactList struct {
	ID       int64     `json:"id"`
	Date     string    `json:"date"`
	Query    string    `json:"query"`
	Contacts []Contact `json:"contacts"`
}
