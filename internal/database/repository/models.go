package repository

import "time"

// Selection is one recorded wallet choice.
type Selection struct {
	ID         string
	WalletID   string
	SelectedAt time.Time
}

// Detection is the persisted install state for one wallet from the most
// recent scan.
type Detection struct {
	WalletID  string
	Installed bool
	ScannedAt time.Time
}
