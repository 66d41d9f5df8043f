package places

// Fixed attribute tables for the text-search endpoint. Values outside these
// sets are omitted from outgoing requests.

// supportedTypes lists the place categories the service recognizes.
var supportedTypes = toSet([]string{
	"accounting",
	"airport",
	"amusement_park",
	"aquarium",
	"art_gallery",
	"atm",
	"bakery",
	"bank",
	"bar",
	"beauty_salon",
	"bicycle_store",
	"book_store",
	"bowling_alley",
	"bus_station",
	"cafe",
	"campground",
	"car_dealer",
	"car_rental",
	"car_repair",
	"car_wash",
	"casino",
	"cemetery",
	"church",
	"city_hall",
	"clothing_store",
	"convenience_store",
	"courthouse",
	"dentist",
	"department_store",
	"doctor",
	"electrician",
	"electronics_store",
	"embassy",
	"establishment",
	"finance",
	"fire_station",
	"florist",
	"food",
	"funeral_home",
	"furniture_store",
	"gas_station",
	"general_contractor",
	"geocode",
	"grocery_or_supermarket",
	"gym",
	"hair_care",
	"hardware_store",
	"health",
	"hindu_temple",
	"home_goods_store",
	"hospital",
	"insurance_agency",
	"jewelry_store",
	"laundry",
	"lawyer",
	"library",
	"liquor_store",
	"local_government_office",
	"locksmith",
	"lodging",
	"meal_delivery",
	"meal_takeaway",
	"mosque",
	"movie_rental",
	"movie_theater",
	"moving_company",
	"museum",
	"night_club",
	"painter",
	"park",
	"parking",
	"pet_store",
	"pharmacy",
	"physiotherapist",
	"place_of_worship",
	"plumber",
	"police",
	"post_office",
	"real_estate_agency",
	"restaurant",
	"roofing_contractor",
	"rv_park",
	"school",
	"shoe_store",
	"shopping_mall",
	"spa",
	"stadium",
	"storage",
	"store",
	"subway_station",
	"synagogue",
	"taxi_stand",
	"train_station",
	"travel_agency",
	"university",
	"veterinary_care",
	"zoo",
})

// supportedLanguages lists the language codes the service recognizes.
var supportedLanguages = toSet([]string{
	"ar",
	"eu",
	"bn",
	"bg",
	"ca",
	"zh-CN",
	"zh-TW",
	"hr",
	"cs",
	"da",
	"nl",
	"en",
	"en-AU",
	"en-GB",
	"fa",
	"fi",
	"fil",
	"fr",
	"gl",
	"de",
	"el",
	"gu",
	"iw",
	"hi",
	"hu",
	"id",
	"it",
	"ja",
	"kn",
	"ko",
	"lv",
	"lt",
	"ml",
	"mr",
	"nn",
	"no",
	"or",
	"pl",
	"pt",
	"pt-BR",
	"pt-PT",
	"ro",
	"rm",
	"ru",
	"sr",
	"sk",
	"sl",
	"es",
	"sv",
	"tl",
	"ta",
	"te",
	"th",
	"tr",
	"uk",
	"vi",
})

func toSet(values []string) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}
