package dto

// CreatePartyRequest body para POST /api/customers y POST /api/suppliers.
type CreatePartyRequest struct {
	Name    string `json:"name"`
	Rut     string `json:"rut"`
	Address string `json:"address,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
}

// PartyResponse cliente o proveedor en respuestas.
type PartyResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Rut     string `json:"rut"`
	Address string `json:"address,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
}
