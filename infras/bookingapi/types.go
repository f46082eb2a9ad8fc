// Package bookingapi is the typed HTTP boundary against the Remote Booking
// Service. All wire shapes (Italian field names, string-encoded decimals,
// varying list envelopes) stay inside this package; callers only ever see
// the normalized types below.
package bookingapi

import (
	gDto "alloggi/shared/dto"
)

const (
	// Booking states as the backend spells them.
	StatoPendente   = "PENDENTE"
	StatoConfermata = "CONFERMATA"
	StatoRifiutata  = "RIFIUTATA"
)

type Photo struct {
	ID          int    `json:"id"`
	ImageURL    string `json:"image_url"`
	Descrizione string `json:"descrizione"`
	Tipo        string `json:"tipo"`
	Ordine      int    `json:"ordine"`
}

type Unit struct {
	ID                 int            `json:"id"`
	Nome               string         `json:"nome"`
	Descrizione        string         `json:"descrizione"`
	Posizione          string         `json:"posizione"`
	PrezzoNotte        gDto.FlexFloat `json:"prezzo_notte"`
	NumeroOspitiMax    int            `json:"numero_ospiti_max"`
	NumeroCamere       int            `json:"numero_camere"`
	NumeroBagni        int            `json:"numero_bagni"`
	Servizi            []string       `json:"servizi"`
	Disponibile        bool           `json:"disponibile"`
	ImmaginePrincipale string         `json:"immagine_principale,omitempty"`
	Foto               []Photo        `json:"foto,omitempty"`
}

type UnitPage = gDto.ListEnvelope[Unit]

type AvailabilityResponse struct {
	AlloggioID  int    `json:"alloggio_id"`
	CheckIn     string `json:"check_in"`
	CheckOut    string `json:"check_out"`
	Disponibile bool   `json:"disponibile"`
}

type CreateBookingRequest struct {
	Alloggio       int     `json:"alloggio"`
	OspiteNome     string  `json:"ospite_nome"`
	OspiteEmail    string  `json:"ospite_email"`
	OspiteTelefono *string `json:"ospite_telefono"`
	CheckIn        string  `json:"check_in"`
	CheckOut       string  `json:"check_out"`
	NumeroOspiti   int     `json:"numero_ospiti"`
	PrezzoTotale   string  `json:"prezzo_totale"`
	Stato          string  `json:"stato"`
	NoteCliente    *string `json:"note_cliente"`
}

type Booking struct {
	ID             int            `json:"id"`
	Alloggio       int            `json:"alloggio"`
	OspiteNome     string         `json:"ospite_nome"`
	OspiteEmail    string         `json:"ospite_email"`
	OspiteTelefono string         `json:"ospite_telefono"`
	CheckIn        string         `json:"check_in"`
	CheckOut       string         `json:"check_out"`
	NumeroOspiti   int            `json:"numero_ospiti"`
	PrezzoTotale   gDto.FlexFloat `json:"prezzo_totale"`
	Stato          string         `json:"stato"`
	NoteCliente    string         `json:"note_cliente"`
	CreatedAt      string         `json:"created_at"`
	UpdatedAt      string         `json:"updated_at"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

type StatusResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Version  string `json:"version,omitempty"`
}
