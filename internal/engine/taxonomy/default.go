package taxonomy

import "github.com/crimson-sun/shelf/internal/model"

// Attributes shared by many categories.
func condition() model.AttributeDefinition {
	return model.AttributeDefinition{
		Name:       "condition",
		Kind:       model.KindSelect,
		Options:    []string{"new", "like_new", "good", "fair", "poor"},
		Required:   true,
		AIFillable: true,
	}
}

func brand(required bool) model.AttributeDefinition {
	return model.AttributeDefinition{Name: "brand", Kind: model.KindText, Required: required, AIFillable: true}
}

func color() model.AttributeDefinition {
	return model.AttributeDefinition{Name: "color", Kind: model.KindText, AIFillable: true}
}

func warranty() model.AttributeDefinition {
	return model.AttributeDefinition{Name: "warranty", Kind: model.KindBoolean}
}

func originalBox() model.AttributeDefinition {
	return model.AttributeDefinition{Name: "original_box", Kind: model.KindBoolean, AIFillable: true}
}

func text(name string, required, ai bool) model.AttributeDefinition {
	return model.AttributeDefinition{Name: name, Kind: model.KindText, Required: required, AIFillable: ai}
}

func number(name string, required, ai bool) model.AttributeDefinition {
	return model.AttributeDefinition{Name: name, Kind: model.KindNumber, Required: required, AIFillable: ai}
}

func flag(name string, ai bool) model.AttributeDefinition {
	return model.AttributeDefinition{Name: name, Kind: model.KindBoolean, AIFillable: ai}
}

func choice(name string, required, ai bool, options ...string) model.AttributeDefinition {
	return model.AttributeDefinition{Name: name, Kind: model.KindSelect, Options: options, Required: required, AIFillable: ai}
}

func choices(name string, required, ai bool, options ...string) model.AttributeDefinition {
	return model.AttributeDefinition{Name: name, Kind: model.KindMultiSelect, Options: options, Required: required, AIFillable: ai}
}

func attrs(a ...model.AttributeDefinition) []model.AttributeDefinition { return a }

// node builds a level 2 or 3 node whose id doubles as its slug.
func node(slug, th, en string, a []model.AttributeDefinition, children ...*model.CategoryNode) *model.CategoryNode {
	return &model.CategoryNode{
		ID:         slug,
		Name:       model.Names{TH: th, EN: en},
		Slug:       slug,
		Attributes: a,
		Children:   children,
	}
}

// leaf builds a node without attributes or children.
func leaf(slug, th, en string) *model.CategoryNode {
	return node(slug, th, en, nil)
}

// DefaultRoots returns the built-in marketplace taxonomy that ships with Shelf.
// Each call returns a fresh tree.
func DefaultRoots() []*model.CategoryNode {
	return []*model.CategoryNode{
		{
			ID:         "1",
			Name:       model.Names{TH: "ยานยนต์", EN: "Automotive"},
			Slug:       "automotive",
			Icon:       "🚗",
			Attributes: attrs(condition()),
			Children: []*model.CategoryNode{
				node("cars", "รถยนต์", "Cars", attrs(
					brand(true),
					text("model", true, true),
					number("year", true, true),
					number("mileage", true, false),
					choice("fuel_type", true, true, "Gasoline", "Diesel", "Hybrid", "Electric", "LPG"),
					choice("transmission", true, true, "Manual", "Automatic", "CVT"),
				),
					leaf("sedans", "รถเก๋ง", "Sedans"),
					leaf("hatchbacks", "รถแฮทช์แบ็ก", "Hatchbacks"),
					leaf("suvs", "รถ SUV", "SUVs"),
					node("electric-vehicles", "รถไฟฟ้า", "Electric Vehicles", attrs(
						number("battery_range_km", false, true),
					)),
				),
				node("motorcycles", "มอเตอร์ไซค์", "Motorcycles", attrs(
					brand(true),
					text("engine_size", true, true),
					number("year", false, true),
				),
					leaf("scooters", "สกู๊ตเตอร์", "Scooters"),
					leaf("big-bikes", "บิ๊กไบค์", "Big Bikes"),
				),
				node("pickups", "รถกระบะ", "Pickup Trucks", attrs(
					brand(true),
					number("year", true, true),
					choice("cab_type", false, true, "Single Cab", "Space Cab", "Double Cab"),
				)),
				leaf("vans", "รถตู้", "Vans"),
				leaf("classic-cars", "รถคลาสสิก", "Classic Cars"),
				leaf("car-parts", "อะไหล่รถยนต์", "Car Parts"),
				leaf("motorcycle-parts", "อะไหล่มอเตอร์ไซค์", "Motorcycle Parts"),
				node("wheels-tires", "ล้อ & ยาง", "Wheels & Tires", attrs(
					text("tire_size", false, true),
					number("rim_inches", false, true),
				)),
				node("car-accessories", "อุปกรณ์ตกแต่งรถ", "Car Accessories", nil,
					leaf("dash-cams", "กล้องติดรถยนต์", "Dash Cams"),
					leaf("car-audio", "เครื่องเสียงรถยนต์", "Car Audio"),
				),
				leaf("car-maintenance", "อุปกรณ์บำรุงรักษารถ", "Car Maintenance"),
			},
		},
		{
			ID:   "2",
			Name: model.Names{TH: "อสังหาริมทรัพย์", EN: "Real Estate"},
			Slug: "real-estate",
			Icon: "🏢",
			Attributes: attrs(
				choice("listing_type", true, false, "sale", "rent"),
				number("area_sqm", true, false),
				text("location", true, false),
			),
			Children: []*model.CategoryNode{
				node("houses", "บ้านเดี่ยว", "Houses", attrs(
					number("bedrooms", true, false),
					number("bathrooms", true, false),
					number("land_sqw", false, false),
				)),
				node("condos", "คอนโด", "Condos", attrs(
					number("bedrooms", true, false),
					number("floor", false, false),
					text("project_name", false, true),
				)),
				leaf("land", "ที่ดิน", "Land"),
				node("townhouses", "ทาวน์เฮาส์", "Townhouses", attrs(
					number("bedrooms", true, false),
					number("floors", false, false),
				)),
				leaf("commercial-buildings", "อาคารพาณิชย์", "Commercial Buildings"),
				leaf("rooms-for-rent", "ห้องเช่า", "Rooms for Rent"),
				leaf("warehouses", "โกดัง / โรงงาน", "Warehouses & Factories"),
				leaf("office-space", "พื้นที่สำนักงาน", "Office Space"),
			},
		},
		{
			ID:         "3",
			Name:       model.Names{TH: "มือถือและแท็บเล็ต", EN: "Mobiles & Tablets"},
			Slug:       "mobiles",
			Icon:       "📱",
			Attributes: attrs(condition(), brand(false)),
			Children: []*model.CategoryNode{
				node("smartphones", "สมาร์ทโฟน", "Smartphones", attrs(
					text("model", true, true),
					choice("storage", true, true, "64GB", "128GB", "256GB", "512GB", "1TB"),
					color(),
					number("battery_health", false, false),
					warranty(),
					originalBox(),
				)),
				node("tablets", "แท็บเล็ต", "Tablets", attrs(
					text("model", true, true),
					choice("storage", false, true, "64GB", "128GB", "256GB", "512GB", "1TB"),
					choice("connectivity", false, true, "Wi-Fi", "Wi-Fi + Cellular"),
				)),
				leaf("phone-cases", "ฟิล์ม / เคส", "Cases & Screen Protectors"),
				leaf("power-banks", "แบตสำรอง", "Power Banks"),
				leaf("chargers", "สายชาร์จ / อะแดปเตอร์", "Cables & Adapters"),
				leaf("earbuds", "หูฟัง True Wireless", "True Wireless Earbuds"),
				leaf("wireless-chargers", "ที่ชาร์จไร้สาย", "Wireless Chargers"),
				node("smartwatches", "นาฬิกาอัจฉริยะ", "Smartwatches", attrs(
					text("case_size", false, true),
				)),
				leaf("mobile-accessories", "อุปกรณ์เสริมสำหรับมือถือ", "Mobile Accessories"),
			},
		},
		{
			ID:         "4",
			Name:       model.Names{TH: "คอมพิวเตอร์และไอที", EN: "Computers & IT"},
			Slug:       "computers",
			Icon:       "💻",
			Attributes: attrs(condition(), brand(false)),
			Children: []*model.CategoryNode{
				node("laptops", "โน้ตบุ๊ค", "Laptops", attrs(
					text("cpu", true, true),
					choice("ram", true, true, "4GB", "8GB", "16GB", "32GB", "64GB"),
					text("storage", true, true),
					number("screen_inches", false, true),
					warranty(),
				)),
				node("desktops", "คอมพิวเตอร์ตั้งโต๊ะ", "Desktop PCs", attrs(
					text("cpu", true, true),
					text("ram", false, true),
				)),
				node("gaming-pcs", "คอมเกมมิ่ง", "Gaming PCs", attrs(
					text("cpu", true, true),
					text("gpu", true, true),
				)),
				leaf("keyboards", "คีย์บอร์ด", "Keyboards"),
				leaf("mice", "เมาส์", "Mice"),
				node("monitors", "จอคอมพิวเตอร์", "Monitors", attrs(
					number("screen_inches", true, true),
					choice("panel", false, true, "IPS", "VA", "TN", "OLED"),
				)),
				leaf("storage-drives", "ฮาร์ดดิสก์ / SSD", "External HDD & SSD"),
				leaf("networking", "อุปกรณ์เน็ตเวิร์ก", "Networking"),
				node("printers", "เครื่องพิมพ์", "Printers", attrs(
					choice("print_type", false, true, "Inkjet", "Laser", "Tank"),
				)),
				node("pc-parts", "ชิ้นส่วนคอมพิวเตอร์", "PC Parts", nil,
					node("memory-modules", "แรม", "RAM", attrs(
						choice("memory_type", false, true, "DDR3", "DDR4", "DDR5"),
					)),
					node("graphics-cards", "การ์ดจอ", "Graphics Cards", attrs(
						number("vram_gb", false, true),
					)),
					leaf("power-supplies", "พาวเวอร์ซัพพลาย", "Power Supplies"),
					leaf("motherboards", "เมนบอร์ด", "Motherboards"),
				),
				leaf("gaming-chairs", "เก้าอี้เกมมิ่ง", "Gaming Chairs"),
			},
		},
		{
			ID:         "5",
			Name:       model.Names{TH: "เครื่องใช้ไฟฟ้า", EN: "Home Appliances"},
			Slug:       "appliances",
			Icon:       "🔌",
			Attributes: attrs(condition(), brand(false), warranty()),
			Children: []*model.CategoryNode{
				node("televisions", "ทีวี", "TVs", attrs(
					number("screen_inches", true, true),
					flag("smart_tv", true),
				)),
				node("refrigerators", "ตู้เย็น", "Refrigerators", attrs(
					number("capacity_cuft", false, true),
				)),
				node("air-conditioners", "แอร์", "Air Conditioners", attrs(
					number("btu", true, true),
					flag("inverter", true),
				)),
				node("washing-machines", "เครื่องซักผ้า", "Washing Machines", attrs(
					number("capacity_kg", false, true),
					choice("loading", false, true, "Front Load", "Top Load"),
				)),
				leaf("microwaves", "ไมโครเวฟ", "Microwaves"),
				leaf("rice-cookers", "หม้อหุงข้าว", "Rice Cookers"),
				leaf("air-purifiers", "เครื่องฟอกอากาศ", "Air Purifiers"),
				leaf("fans", "พัดลม", "Fans"),
				leaf("vacuum-cleaners", "เครื่องดูดฝุ่น", "Vacuum Cleaners"),
				leaf("water-heaters", "เครื่องทำน้ำอุ่น", "Water Heaters"),
				leaf("irons", "เตารีด", "Irons"),
			},
		},
		{
			ID:         "6",
			Name:       model.Names{TH: "แฟชั่น", EN: "Fashion"},
			Slug:       "fashion",
			Icon:       "👕",
			Attributes: attrs(condition(), brand(false)),
			Children: []*model.CategoryNode{
				node("mens-clothing", "เสื้อผ้าผู้ชาย", "Men's Clothing", attrs(
					choice("size", true, true, "XS", "S", "M", "L", "XL", "XXL"),
					color(),
				)),
				node("womens-clothing", "เสื้อผ้าผู้หญิง", "Women's Clothing", attrs(
					choice("size", true, true, "XS", "S", "M", "L", "XL", "XXL"),
					color(),
				)),
				leaf("kids-fashion", "เสื้อผ้าเด็ก", "Kids' Clothing"),
				node("shoes", "รองเท้า", "Shoes", attrs(
					text("shoe_size", true, true),
					choices("gender", false, true, "Men", "Women", "Unisex"),
				)),
				node("bags", "กระเป๋า", "Bags", nil,
					leaf("handbags", "กระเป๋าถือ", "Handbags"),
					leaf("backpacks", "กระเป๋าเป้", "Backpacks"),
					leaf("wallets", "กระเป๋าสตางค์", "Wallets"),
				),
				node("watches", "นาฬิกา", "Watches", attrs(
					choice("movement", false, true, "Automatic", "Quartz", "Manual"),
					originalBox(),
				)),
				leaf("jewelry", "เครื่องประดับ", "Jewelry"),
				node("luxury-preowned", "แบรนด์เนมมือสอง", "Pre-owned Luxury", attrs(
					flag("authenticity_card", false),
				)),
			},
		},
		{
			ID:         "7",
			Name:       model.Names{TH: "เกมและแก็ดเจ็ต", EN: "Gaming & Gadgets"},
			Slug:       "gaming",
			Icon:       "🎮",
			Attributes: attrs(condition()),
			Children: []*model.CategoryNode{
				node("consoles", "เครื่องเกม", "Game Consoles", attrs(
					choice("platform", true, true, "PlayStation", "Xbox", "Nintendo", "Other"),
					text("storage", false, true),
				)),
				leaf("controllers", "จอย / คอนโทรลเลอร์", "Controllers"),
				leaf("video-games", "แผ่นเกม", "Video Games"),
				leaf("vr-headsets", "แว่น VR", "VR Headsets"),
				node("drones", "โดรน", "Drones", attrs(
					flag("camera_included", true),
				)),
				leaf("gaming-accessories", "อุปกรณ์เสริมเกม", "Gaming Accessories"),
			},
		},
		{
			ID:         "8",
			Name:       model.Names{TH: "กล้องถ่ายรูป", EN: "Cameras"},
			Slug:       "cameras",
			Icon:       "📷",
			Attributes: attrs(condition(), brand(false)),
			Children: []*model.CategoryNode{
				node("dslr-cameras", "กล้อง DSLR", "DSLR Cameras", attrs(
					number("shutter_count", false, false),
					choice("sensor", false, true, "Full Frame", "APS-C", "Micro Four Thirds"),
				)),
				node("mirrorless-cameras", "กล้อง Mirrorless", "Mirrorless Cameras", attrs(
					number("shutter_count", false, false),
					choice("sensor", false, true, "Full Frame", "APS-C", "Micro Four Thirds"),
				)),
				node("lenses", "เลนส์", "Lenses", attrs(
					text("mount", true, true),
					text("focal_length", false, true),
				)),
				leaf("action-cameras", "กล้องแอคชั่น", "Action Cameras"),
				leaf("tripods", "ขาตั้งกล้อง", "Tripods"),
				leaf("flashes", "แฟลช", "Flashes"),
				leaf("camera-accessories", "อุปกรณ์เสริมกล้อง", "Camera Accessories"),
			},
		},
		{
			ID:         "9",
			Name:       model.Names{TH: "พระเครื่องและของสะสม", EN: "Amulets & Collectibles"},
			Slug:       "amulets-collectibles",
			Icon:       "🙏",
			Attributes: attrs(condition()),
			Children: []*model.CategoryNode{
				node("thai-amulets", "พระเครื่อง", "Thai Amulets", attrs(
					text("temple", false, false),
					text("era", false, false),
					flag("certificate", false),
				)),
				leaf("coins", "เหรียญ", "Coins"),
				node("trading-cards", "การ์ดสะสม", "Trading Cards", attrs(
					choice("grading", false, false, "Raw", "PSA", "BGS", "CGC"),
				),
					leaf("pokemon-cards", "การ์ดโปเกมอน", "Pokémon Cards"),
					leaf("sports-cards", "การ์ดกีฬา", "Sports Cards"),
				),
				leaf("figures", "โมเดลฟิกเกอร์", "Figures & Models"),
				leaf("antiques", "ของเก่า / ของแรร์", "Antiques & Rarities"),
			},
		},
		{
			ID:   "10",
			Name: model.Names{TH: "สัตว์เลี้ยง", EN: "Pets"},
			Slug: "pets",
			Icon: "🐾",
			Children: []*model.CategoryNode{
				node("dogs", "สุนัข", "Dogs", attrs(
					text("breed", true, true),
					number("age_months", true, false),
					flag("vaccinated", false),
				)),
				node("cats", "แมว", "Cats", attrs(
					text("breed", true, true),
					number("age_months", true, false),
					flag("vaccinated", false),
				)),
				node("pet-food", "อาหารสัตว์", "Pet Food", attrs(
					choice("pet_type", true, true, "Dog", "Cat", "Bird", "Fish", "Rabbit", "Hamster", "Other"),
				),
					leaf("dog-food", "อาหารสุนัข", "Dog Food"),
					leaf("cat-food", "อาหารแมว", "Cat Food"),
				),
				leaf("pet-toys", "ของเล่นสัตว์", "Pet Toys"),
				leaf("pet-supplies", "อุปกรณ์สัตว์เลี้ยง", "Pet Supplies"),
				leaf("pet-cages", "กรง / ที่นอน", "Cages & Beds"),
			},
		},
		{
			ID:   "11",
			Name: model.Names{TH: "บริการ", EN: "Services"},
			Slug: "services",
			Icon: "🛠️",
			Attributes: attrs(
				text("service_area", true, false),
			),
			Children: []*model.CategoryNode{
				leaf("repair-services", "ช่างซ่อม", "Repair"),
				leaf("cleaning-services", "ทำความสะอาด", "Cleaning"),
				leaf("computer-repair", "ซ่อมคอม", "Computer Repair"),
				leaf("tutoring", "ติวเตอร์", "Tutoring"),
				leaf("photography-services", "ถ่ายรูป / ถ่ายวิดีโอ", "Photography & Video"),
				leaf("automotive-services", "บริการยานยนต์", "Automotive Services"),
			},
		},
		{
			ID:         "12",
			Name:       model.Names{TH: "กีฬาและท่องเที่ยว", EN: "Sports & Travel"},
			Slug:       "sports-travel",
			Icon:       "⚽",
			Attributes: attrs(condition(), brand(false)),
			Children: []*model.CategoryNode{
				node("fitness-equipment", "อุปกรณ์ฟิตเนส", "Fitness Equipment", nil,
					leaf("dumbbells", "ดัมเบล", "Dumbbells"),
					leaf("treadmills", "ลู่วิ่ง", "Treadmills"),
					leaf("home-gyms", "โฮมยิม", "Home Gyms"),
				),
				leaf("sports-gear", "อุปกรณ์กีฬา", "Sports Gear"),
				leaf("camping-hiking", "แคมป์ปิ้งและเดินป่า", "Camping & Hiking"),
				node("bicycles", "จักรยาน", "Bicycles", attrs(
					choice("bike_type", true, true, "Mountain Bike", "Road Bike", "E-Bike", "Folding Bike", "BMX"),
					text("frame_size", false, true),
				)),
				leaf("skates", "สเก็ต / โรลเลอร์", "Skates & Rollers"),
				leaf("yoga-pilates", "โยคะ / พิลาทิส", "Yoga & Pilates"),
				leaf("martial-arts", "มวย / ศิลปะการต่อสู้", "Boxing & Martial Arts"),
				leaf("swimming", "ว่ายน้ำ", "Swimming"),
			},
		},
		{
			ID:         "13",
			Name:       model.Names{TH: "บ้านและสวน", EN: "Home & Garden"},
			Slug:       "home-garden",
			Icon:       "🏠",
			Attributes: attrs(condition()),
			Children: []*model.CategoryNode{
				node("furniture", "เฟอร์นิเจอร์", "Furniture", attrs(
					text("material", false, true),
					text("dimensions", false, false),
				)),
				leaf("home-decor", "ของแต่งบ้าน", "Home Decor"),
				leaf("plants", "ต้นไม้", "Plants"),
				leaf("garden-equipment", "อุปกรณ์สวน", "Garden Equipment"),
				leaf("hand-tools", "เครื่องมือช่าง", "Tools"),
				leaf("kitchenware", "เครื่องครัว", "Kitchenware"),
				leaf("bedding-curtains", "ผ้าปูที่นอน / ผ้าม่าน", "Bedding & Curtains"),
				leaf("lighting", "โคมไฟ", "Lighting"),
				leaf("rugs-mats", "พรม / เสื่อ", "Rugs & Mats"),
			},
		},
		{
			ID:   "14",
			Name: model.Names{TH: "เบ็ดเตล็ด", EN: "Others"},
			Slug: "others",
			Icon: "📦",
			Children: []*model.CategoryNode{
				leaf("general-items", "ของใช้ทั่วไป", "General Items"),
				leaf("handmade", "สินค้าแฮนด์เมด", "Handmade"),
				leaf("diy", "DIY", "DIY"),
				leaf("recycled", "ของรีไซเคิล", "Recycled Items"),
				leaf("office-supplies", "เครื่องมือสำนักงาน", "Office Supplies"),
			},
		},
		{
			ID:         "15",
			Name:       model.Names{TH: "ความงามและของใช้ส่วนตัว", EN: "Beauty & Personal Care"},
			Slug:       "beauty",
			Icon:       "💄",
			Attributes: attrs(condition(), brand(false), text("expiry_date", false, false)),
			Children: []*model.CategoryNode{
				leaf("makeup", "เครื่องสำอาง", "Makeup"),
				leaf("skincare", "ผลิตภัณฑ์ดูแลผิว", "Skincare"),
				leaf("haircare", "ผลิตภัณฑ์ดูแลผม", "Haircare"),
				node("fragrances", "น้ำหอม", "Fragrances", attrs(
					number("volume_ml", false, true),
				)),
				leaf("body-care", "อุปกรณ์ทำความสะอาดร่างกาย", "Body Care"),
				leaf("makeup-tools", "อุปกรณ์แต่งหน้า", "Makeup Tools"),
				leaf("mens-grooming", "ผลิตภัณฑ์ผู้ชาย", "Men's Grooming"),
			},
		},
		{
			ID:         "16",
			Name:       model.Names{TH: "แม่และเด็ก", EN: "Mother & Baby"},
			Slug:       "mother-baby",
			Icon:       "👶",
			Attributes: attrs(condition()),
			Children: []*model.CategoryNode{
				leaf("baby-food", "นมผง / อาหารเด็ก", "Formula & Baby Food"),
				leaf("diapers", "ผ้าอ้อม / ของใช้เด็ก", "Diapers & Baby Care"),
				leaf("baby-toys", "ของเล่นเด็ก", "Baby Toys"),
				node("strollers-car-seats", "รถเข็นเด็ก / คาร์ซีท", "Strollers & Car Seats", attrs(
					text("max_weight_kg", false, true),
				)),
				leaf("baby-clothes", "เสื้อผ้าเด็กอ่อน", "Baby Clothes"),
				leaf("maternity", "ของใช้คุณแม่", "Maternity"),
				leaf("feeding", "อุปกรณ์ให้นม", "Feeding"),
			},
		},
	}
}
