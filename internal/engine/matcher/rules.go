package matcher

import "github.com/crimson-sun/shelf/internal/model"

func rule(keyword string, categoryID int, sub string, priority int) model.KeywordRule {
	return model.KeywordRule{Keyword: keyword, CategoryID: categoryID, Subcategory: sub, Priority: priority}
}

// DefaultRules returns the built-in keyword table. Subcategory names are the
// English display names of the default taxonomy. Order matters for ties.
func DefaultRules() []model.KeywordRule {
	return []model.KeywordRule{
		// Automotive
		rule("กล้องติดรถ", 1, "Dash Cams", 10),
		rule("dash cam", 1, "Dash Cams", 10),
		rule("รถยนต์", 1, "Cars", 10),
		rule("รถเก๋ง", 1, "Sedans", 10),
		rule("รถซีดาน", 1, "Sedans", 10),
		rule("honda city", 1, "Sedans", 10),
		rule("toyota camry", 1, "Sedans", 10),
		rule("toyota yaris", 1, "Hatchbacks", 10),
		rule("fortuner", 1, "SUVs", 10),
		rule("tesla", 1, "Electric Vehicles", 10),
		rule("honda wave", 1, "Motorcycles", 10),
		rule("honda click", 1, "Scooters", 10),
		rule("pcx", 1, "Scooters", 10),
		rule("nmax", 1, "Scooters", 10),
		rule("vespa", 1, "Scooters", 10),
		rule("honda", 1, "Sedans", 9),
		rule("toyota", 1, "Sedans", 9),
		rule("mazda", 1, "Sedans", 9),
		rule("nissan", 1, "Sedans", 9),
		rule("isuzu", 1, "Pickup Trucks", 9),
		rule("hilux", 1, "Pickup Trucks", 10),
		rule("yamaha", 1, "Motorcycles", 9),
		rule("รถกระบะ", 1, "Pickup Trucks", 10),
		rule("pickup", 1, "Pickup Trucks", 9),
		rule("รถตู้", 1, "Vans", 10),
		rule("มอเตอร์ไซค์", 1, "Motorcycles", 10),
		rule("มอไซค์", 1, "Motorcycles", 10),
		rule("รถจักรยานยนต์", 1, "Motorcycles", 10),
		rule("บิ๊กไบค์", 1, "Big Bikes", 9),
		rule("ยาง", 1, "Wheels & Tires", 9),
		rule("ล้อแม็ก", 1, "Wheels & Tires", 9),
		rule("ปั๊มลม", 1, "Car Maintenance", 10),
		rule("เครื่องปั๊มลม", 1, "Car Maintenance", 10),
		rule("air pump", 1, "Car Maintenance", 10),
		rule("ปั๊มลมพกพา", 1, "Car Maintenance", 10),
		rule("ที่เติมลมยาง", 1, "Car Maintenance", 10),
		rule("น้ำมันเครื่อง", 1, "Car Maintenance", 9),
		rule("แบตเตอรี่", 1, "Car Maintenance", 9),
		rule("battery", 1, "Car Maintenance", 8),

		// Real estate
		rule("บ้าน", 2, "Houses", 8),
		rule("บ้านเดี่ยว", 2, "Houses", 10),
		rule("คอนโด", 2, "Condos", 10),
		rule("คอนโดมิเนียม", 2, "Condos", 10),
		rule("ทาวน์เฮ้าส์", 2, "Townhouses", 10),
		rule("ทาวน์โฮม", 2, "Townhouses", 10),
		rule("ที่ดิน", 2, "Land", 10),

		// Mobiles & tablets
		rule("iphone", 3, "Smartphones", 10),
		rule("samsung", 3, "Smartphones", 10),
		rule("oppo", 3, "Smartphones", 10),
		rule("vivo", 3, "Smartphones", 10),
		rule("xiaomi", 3, "Smartphones", 10),
		rule("มือถือ", 3, "Smartphones", 9),
		rule("โทรศัพท์", 3, "Smartphones", 9),
		rule("สมาร์ทโฟน", 3, "Smartphones", 10),
		rule("smartphone", 3, "Smartphones", 8),
		rule("ipad", 3, "Tablets", 10),
		rule("แท็บเล็ต", 3, "Tablets", 10),
		rule("tablet", 3, "Tablets", 8),
		rule("airpods", 3, "True Wireless Earbuds", 10),
		rule("หูฟังบลูทูธ", 3, "True Wireless Earbuds", 9),
		rule("หูฟังไร้สาย", 3, "True Wireless Earbuds", 9),
		rule("true wireless", 3, "True Wireless Earbuds", 8),
		rule("เคสมือถือ", 3, "Cases & Screen Protectors", 9),
		rule("ฟิล์มกันรอย", 3, "Cases & Screen Protectors", 9),
		rule("powerbank", 3, "Power Banks", 10),
		rule("แบตสำรอง", 3, "Power Banks", 10),
		rule("apple watch", 3, "Smartwatches", 10),
		rule("smartwatch", 3, "Smartwatches", 9),

		// Computers & IT
		rule("notebook", 4, "Laptops", 10),
		rule("laptop", 4, "Laptops", 10),
		rule("แล็ปท็อป", 4, "Laptops", 10),
		rule("โน้ตบุ๊ค", 4, "Laptops", 10),
		rule("macbook", 4, "Laptops", 10),
		rule("gaming pc", 4, "Gaming PCs", 10),
		rule("คอมเกม", 4, "Gaming PCs", 10),
		rule("pantum", 4, "Printers", 10),
		rule("hp", 4, "Printers", 9),
		rule("epson", 4, "Printers", 9),
		rule("brother", 4, "Printers", 9),
		rule("printer", 4, "Printers", 10),
		rule("เครื่องพิมพ์", 4, "Printers", 10),
		rule("เลเซอร์", 4, "Printers", 9),
		rule("laser", 4, "Printers", 9),
		rule("คีย์บอร์ด", 4, "Keyboards", 9),
		rule("keyboard", 4, "Keyboards", 9),
		rule("เมาส์", 4, "Mice", 9),
		rule("mouse", 4, "Mice", 9),
		rule("จอคอม", 4, "Monitors", 9),
		rule("monitor", 4, "Monitors", 9),
		rule("ssd", 4, "External HDD & SSD", 10),
		rule("harddisk", 4, "External HDD & SSD", 9),
		rule("ram", 4, "RAM", 10),
		rule("graphic card", 4, "Graphics Cards", 10),
		rule("การ์ดจอ", 4, "Graphics Cards", 10),

		// Home appliances
		rule("ทีวี", 5, "TVs", 10),
		rule("โทรทัศน์", 5, "TVs", 10),
		rule("smart tv", 5, "TVs", 10),
		rule("samsung tv", 5, "TVs", 10),
		rule("lg tv", 5, "TVs", 10),
		rule("ตู้เย็น", 5, "Refrigerators", 10),
		rule("refrigerator", 5, "Refrigerators", 8),
		rule("แอร์", 5, "Air Conditioners", 10),
		rule("เครื่องปรับอากาศ", 5, "Air Conditioners", 10),
		rule("air conditioner", 5, "Air Conditioners", 8),
		rule("เครื่องซักผ้า", 5, "Washing Machines", 10),
		rule("washing machine", 5, "Washing Machines", 8),
		rule("ไมโครเวฟ", 5, "Microwaves", 10),
		rule("microwave", 5, "Microwaves", 8),
		rule("หม้อหุงข้าว", 5, "Rice Cookers", 10),
		rule("rice cooker", 5, "Rice Cookers", 8),
		rule("เครื่องฟอกอากาศ", 5, "Air Purifiers", 10),
		rule("air purifier", 5, "Air Purifiers", 8),
		rule("พัดลม ", 5, "Fans", 8),
		rule(" พัดลม", 5, "Fans", 8),
		rule("fan ", 5, "Fans", 7),
		rule("hatari", 5, "Fans", 9),
		rule("mitsubishi", 5, "Fans", 9),
		rule("เครื่องดูดฝุ่น", 5, "Vacuum Cleaners", 10),
		rule("เครื่องทำน้ำอุ่น", 5, "Water Heaters", 10),

		// Fashion
		rule("เสื้อ", 6, "Men's Clothing", 6),
		rule("กางเกง", 6, "Men's Clothing", 6),
		rule("เดรส", 6, "Women's Clothing", 9),
		rule("กระโปรง", 6, "Women's Clothing", 9),
		rule("รองเท้า", 6, "Shoes", 9),
		rule("รองเท้าผ้าใบ", 6, "Shoes", 9),
		rule("รองเท้าส้นสูง", 6, "Shoes", 9),
		rule("sneaker", 6, "Shoes", 9),
		rule("nike", 6, "Shoes", 9),
		rule("adidas", 6, "Shoes", 9),
		rule("กระเป๋า", 6, "Bags", 9),
		rule("กระเป๋าสตางค์", 6, "Wallets", 9),
		rule("กระเป๋าเป้", 6, "Backpacks", 9),
		rule("backpack", 6, "Backpacks", 8),
		rule("นาฬิกา", 6, "Watches", 9),
		rule("นาฬิกาข้อมือ", 6, "Watches", 9),
		rule("watch", 6, "Watches", 8),
		rule("rolex", 6, "Watches", 10),
		rule("seiko", 6, "Watches", 10),
		rule("casio", 6, "Watches", 10),
		rule("สร้อย", 6, "Jewelry", 9),
		rule("แหวน", 6, "Jewelry", 9),
		rule("ต่างหู", 6, "Jewelry", 9),

		// Gaming & gadgets
		rule("playstation", 7, "Game Consoles", 10),
		rule("ps5", 7, "Game Consoles", 10),
		rule("ps4", 7, "Game Consoles", 10),
		rule("xbox", 7, "Game Consoles", 10),
		rule("nintendo switch", 7, "Game Consoles", 10),
		rule("switch", 7, "Game Consoles", 6),
		rule("จอยเกม", 7, "Controllers", 9),
		rule("controller", 7, "Controllers", 9),
		rule("vr", 7, "VR Headsets", 10),
		rule("oculus", 7, "VR Headsets", 10),
		rule("drone", 7, "Drones", 10),
		rule("โดรน", 7, "Drones", 10),

		// Cameras
		rule("กล้อง", 8, "", 8),
		rule("camera", 8, "", 7),
		rule("dslr", 8, "DSLR Cameras", 10),
		rule("mirrorless", 8, "Mirrorless Cameras", 10),
		rule("canon", 8, "DSLR Cameras", 9),
		rule("nikon", 8, "DSLR Cameras", 9),
		rule("sony", 8, "Mirrorless Cameras", 9),
		rule("fujifilm", 8, "Mirrorless Cameras", 9),
		rule("เลนส์", 8, "Lenses", 9),
		rule("lens", 8, "Lenses", 8),
		rule("gopro", 8, "Action Cameras", 10),
		rule("action camera", 8, "Action Cameras", 9),
		rule("กล้องกันน้ำ", 8, "Action Cameras", 9),

		// Amulets & collectibles
		rule("พระ", 9, "Thai Amulets", 9),
		rule("พระเครื่อง", 9, "Thai Amulets", 10),
		rule("amulet", 9, "Thai Amulets", 10),
		rule("เหรียญ", 9, "Coins", 9),
		rule("การ์ดโปเกมอน", 9, "Pokémon Cards", 10),
		rule("pokemon card", 9, "Pokémon Cards", 10),
		rule("โมเดล", 9, "Figures & Models", 9),
		rule("ฟิกเกอร์", 9, "Figures & Models", 9),

		// Pets
		rule("สุนัข", 10, "Dogs", 10),
		rule("หมา", 10, "Dogs", 10),
		rule("dog", 10, "Dogs", 8),
		rule("แมว", 10, "Cats", 10),
		rule("cat", 10, "Cats", 8),
		rule("อาหารสุนัข", 10, "Dog Food", 10),
		rule("อาหารแมว", 10, "Cat Food", 10),
		rule("ขนมสุนัข", 10, "Dog Food", 9),
		rule("ขนมแมว", 10, "Cat Food", 9),

		// Sports & travel
		rule("ดัมเบล", 12, "Dumbbells", 10),
		rule("dumbbell", 12, "Dumbbells", 9),
		rule("บาร์เบล", 12, "Fitness Equipment", 10),
		rule("ลู่วิ่ง", 12, "Treadmills", 10),
		rule("treadmill", 12, "Treadmills", 9),
		rule("จักรยาน", 12, "Bicycles", 10),
		rule("จักรยานเสือภูเขา", 12, "Bicycles", 10),
		rule("จักรยานเสือหมอบ", 12, "Bicycles", 10),
		rule("bike", 12, "Bicycles", 8),
		rule("เสื่อโยคะ", 12, "Yoga & Pilates", 10),
		rule("yoga mat", 12, "Yoga & Pilates", 9),

		// Beauty
		rule("ลิปสติก", 15, "Makeup", 10),
		rule("lipstick", 15, "Makeup", 9),
		rule("รองพื้น", 15, "Makeup", 10),
		rule("foundation", 15, "Makeup", 9),
		rule("แป้ง", 15, "Makeup", 8),
		rule("คุชชั่น", 15, "Makeup", 9),
		rule("cushion", 15, "Makeup", 8),
		rule("ครีม", 15, "Skincare", 7),
		rule("ครีมบำรุง", 15, "Skincare", 9),
		rule("เซรั่ม", 15, "Skincare", 10),
		rule("serum", 15, "Skincare", 9),
		rule("โลชั่น", 15, "Skincare", 9),
		rule("lotion", 15, "Skincare", 8),
		rule("มาส์ก", 15, "Skincare", 9),
		rule("mask", 15, "Skincare", 8),
		rule("แชมพู", 15, "Haircare", 10),
		rule("shampoo", 15, "Haircare", 9),
		rule("ครีมนวด", 15, "Haircare", 9),
		rule("conditioner", 15, "Haircare", 9),
		rule("น้ำหอม", 15, "Fragrances", 10),
		rule("perfume", 15, "Fragrances", 10),
		rule("โคโลญ", 15, "Fragrances", 9),

		// Mother & baby
		rule("นมผง", 16, "Formula & Baby Food", 10),
		rule("นมผงเด็ก", 16, "Formula & Baby Food", 10),
		rule("milk powder", 16, "Formula & Baby Food", 9),
		rule("ผ้าอ้อม", 16, "Diapers & Baby Care", 10),
		rule("diaper", 16, "Diapers & Baby Care", 10),
		rule("pampers", 16, "Diapers & Baby Care", 10),
		rule("รถเข็นเด็ก", 16, "Strollers & Car Seats", 10),
		rule("stroller", 16, "Strollers & Car Seats", 10),
		rule("คาร์ซีท", 16, "Strollers & Car Seats", 10),
		rule("car seat", 16, "Strollers & Car Seats", 9),
		rule("ของเล่นเด็ก", 16, "Baby Toys", 9),
		rule("baby toy", 16, "Baby Toys", 9),
	}
}
