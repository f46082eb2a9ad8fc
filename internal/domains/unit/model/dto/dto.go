package dto

import (
	"sort"

	"alloggi/infras/bookingapi"
	"alloggi/internal/domains/unit/model"
	"alloggi/shared"
)

// FromAPI maps a wire unit onto the domain snapshot. Photos come back in
// ordine order, and the main image falls back to the first "principale"
// photo, then to the first photo at all, mirroring the backend serializer.
func FromAPI(wire bookingapi.Unit) model.Unit {
	unit := model.Unit{
		ID:           wire.ID,
		Name:         wire.Nome,
		Description:  wire.Descrizione,
		Location:     wire.Posizione,
		NightlyRate:  wire.PrezzoNotte.Float64(),
		MaxGuests:    wire.NumeroOspitiMax,
		Rooms:        wire.NumeroCamere,
		Bathrooms:    wire.NumeroBagni,
		Amenities:    wire.Servizi,
		Available:    wire.Disponibile,
		MainImageURL: wire.ImmaginePrincipale,
	}

	if len(wire.Foto) > 0 {
		unit.Photos = make([]model.Photo, len(wire.Foto))
		for i, foto := range wire.Foto {
			unit.Photos[i] = model.Photo{
				ID:          foto.ID,
				URL:         foto.ImageURL,
				Description: foto.Descrizione,
				Category:    foto.Tipo,
				Order:       foto.Ordine,
			}
		}

		sort.SliceStable(unit.Photos, func(i, j int) bool {
			return unit.Photos[i].Order < unit.Photos[j].Order
		})
	}

	if unit.MainImageURL == "" {
		unit.MainImageURL = fallbackMainImage(unit.Photos)
	}

	return unit
}

func FromAPIList(wires []bookingapi.Unit) []model.Unit {
	units := make([]model.Unit, len(wires))
	for i, wire := range wires {
		units[i] = FromAPI(wire)
	}

	return units
}

func fallbackMainImage(photos []model.Photo) string {
	for _, photo := range photos {
		if photo.Category == model.PhotoCategoryMain {
			return photo.URL
		}
	}

	if len(photos) > 0 {
		return photos[0].URL
	}

	return ""
}

type GetUnitsResponse struct {
	Units       []model.Unit
	TotalData   int
	TotalPage   int
	CurrentPage int
}

func (r *GetUnitsResponse) FromAPIPage(page bookingapi.UnitPage, requestedPage, limit int) {
	r.Units = FromAPIList(page.Results)
	r.TotalData = page.Count

	r.TotalPage = page.NumPages
	if r.TotalPage == 0 {
		r.TotalPage = shared.CalculateTotalPage(page.Count, limit)
	}

	r.CurrentPage = page.CurrentPage
	if r.CurrentPage == 0 {
		r.CurrentPage = requestedPage
	}
}
