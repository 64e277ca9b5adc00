package validator

import "github.com/crimson-sun/shelf/internal/model"

// DefaultFamilies returns groups of subcategories whose listings routinely
// share vocabulary. A selection never draws a mismatch warning against
// another member of its family. Members match their descendants too, so
// "cars" covers "sedans" and "bags" covers "handbags".
func DefaultFamilies() []model.Family {
	return []model.Family{
		// Computers: core machines share CPU, RAM and storage terms.
		{Name: "computer_core", Members: []string{"laptops", "desktops", "gaming-pcs", "pc-parts"}},
		{Name: "computer_peripherals", Members: []string{"monitors", "printers", "keyboards", "mice", "storage-drives", "networking"}},

		// Mobiles: phones and tablets stay apart from what plugs into them.
		{Name: "mobile_devices", Members: []string{"smartphones", "tablets"}},
		{Name: "mobile_accessories", Members: []string{"smartwatches", "mobile-accessories", "phone-cases", "chargers", "power-banks", "earbuds", "wireless-chargers"}},

		{Name: "camera_body", Members: []string{"dslr-cameras", "mirrorless-cameras"}},
		{Name: "camera_accessories", Members: []string{"lenses", "tripods", "flashes", "camera-accessories"}},

		{Name: "fashion_clothing", Members: []string{"mens-clothing", "womens-clothing", "kids-fashion"}},
		{Name: "fashion_accessories", Members: []string{"bags", "shoes", "watches", "jewelry"}},

		{Name: "gaming_accessories", Members: []string{"controllers", "video-games", "gaming-accessories"}},

		// Automotive: brand names span cars and motorcycles.
		{Name: "automotive_vehicles", Members: []string{"cars", "motorcycles", "pickups", "vans", "classic-cars"}},
		{Name: "automotive_parts", Members: []string{"car-parts", "motorcycle-parts", "car-accessories", "wheels-tires", "car-maintenance"}},

		{Name: "realestate_residential", Members: []string{"houses", "condos", "townhouses", "land"}},
		{Name: "realestate_commercial", Members: []string{"commercial-buildings", "rooms-for-rent", "warehouses", "office-space"}},

		{Name: "pets_animals", Members: []string{"dogs", "cats"}},
		{Name: "pets_supplies", Members: []string{"pet-food", "pet-toys", "pet-supplies", "pet-cages"}},

		{Name: "kids_essentials", Members: []string{"diapers", "baby-clothes", "strollers-car-seats", "feeding"}},

		{Name: "appliances_cooling", Members: []string{"air-conditioners", "fans"}},
		{Name: "appliances_kitchen", Members: []string{"refrigerators", "washing-machines", "microwaves", "rice-cookers"}},
	}
}
