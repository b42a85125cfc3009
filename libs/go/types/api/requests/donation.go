package requests

// Field contents are validated by the orchestrator so that every rejected
// action reports the offending field the same way.

// AddShelterRequest registers a shelter on the contract.
type AddShelterRequest struct {
	Address string `json:"address"`
	Name    string `json:"name"`
}

// AddAnimalRequest registers an animal owned by the connected shelter.
type AddAnimalRequest struct {
	Name    string `json:"name"`
	Species string `json:"species"`
}

// DonateRequest sends a one-off donation. Amount is a decimal string.
type DonateRequest struct {
	Amount         string `json:"amount"`
	ShelterAddress string `json:"shelter_address"`
}

// DonateRecurringRequest configures a recurring donation.
type DonateRecurringRequest struct {
	Amount         string `json:"amount"`
	Frequency      string `json:"frequency"` // daily, weekly or monthly
	Occurrences    int    `json:"occurrences"`
	ShelterAddress string `json:"shelter_address"`
}

// WithdrawRequest moves pool funds to a wallet.
type WithdrawRequest struct {
	Amount             string `json:"amount"`
	DestinationAddress string `json:"destination_address"`
}

// MarkSpentRequest records pool funds as spent.
type MarkSpentRequest struct {
	Amount string `json:"amount"`
}
