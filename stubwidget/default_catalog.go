package stubwidget

import "github.com/networkteam/pickupcheck/geo"

// DefaultCatalog returns a small set of Czech pickup points. Prague, Brno and Ostrava city centres
// have Z-Boxes within the default radius; remote locations have none.
func DefaultCatalog() *Catalog {
	return NewCatalog([]PickupPoint{
		{
			ID: "zbox-praha9-vysocany", Name: "Z-BOX Praha 9 Vysočany", Street: "Sokolovská 304",
			District: "Praha 9", City: "Praha", Kind: KindZBox, Wheelchair: true, Nonstop: true,
			Location: geo.Point{Latitude: 50.1100, Longitude: 14.5030},
		},
		{
			ID: "zbox-praha9-prosek", Name: "Z-BOX Praha 9 Prosek", Street: "Prosecká 851/64",
			District: "Praha 9", City: "Praha", Kind: KindZBox, Nonstop: true,
			Location: geo.Point{Latitude: 50.1200, Longitude: 14.4990},
		},
		{
			ID: "zbox-praha9-hloubetin", Name: "Z-BOX Praha 9 Hloubětín", Street: "Kolbenova 40",
			District: "Praha 9", City: "Praha", Kind: KindZBox, Wheelchair: true, Nonstop: true,
			Location: geo.Point{Latitude: 50.1064, Longitude: 14.5100},
		},
		{
			ID: "zbox-praha1-republiky", Name: "Z-BOX Praha 1 Náměstí Republiky", Street: "Náměstí Republiky 8",
			District: "Praha 1", City: "Praha", Kind: KindZBox, Nonstop: true,
			Location: geo.Point{Latitude: 50.0875, Longitude: 14.4289},
		},
		{
			ID: "point-praha2-miru", Name: "Trafika Náměstí Míru", Street: "Náměstí Míru 9",
			District: "Praha 2", City: "Praha", Kind: KindPoint, Wheelchair: true,
			Location: geo.Point{Latitude: 50.0753, Longitude: 14.4372},
		},
		{
			ID: "zbox-brno-stred", Name: "Z-BOX Brno střed", Street: "Husova 18",
			District: "Brno-střed", City: "Brno", Kind: KindZBox, Wheelchair: true, Nonstop: true,
			Location: geo.Point{Latitude: 49.1938, Longitude: 16.6059},
		},
		{
			ID: "point-brno-kralovo-pole", Name: "Papírnictví Královo Pole", Street: "Palackého 60",
			District: "Brno-Královo Pole", City: "Brno", Kind: KindPoint,
			Location: geo.Point{Latitude: 49.2270, Longitude: 16.5920},
		},
		{
			ID: "zbox-ostrava-centrum", Name: "Z-BOX Ostrava centrum", Street: "Nádražní 12",
			District: "Moravská Ostrava", City: "Ostrava", Kind: KindZBox, Nonstop: true,
			Location: geo.Point{Latitude: 49.8350, Longitude: 18.2880},
		},
		{
			ID: "zbox-ostrava-poruba", Name: "Z-BOX Ostrava Poruba", Street: "Hlavní třída 583",
			District: "Poruba", City: "Ostrava", Kind: KindZBox, Wheelchair: true, Nonstop: true,
			Location: geo.Point{Latitude: 49.8300, Longitude: 18.1700},
		},
		{
			ID: "zbox-plzen-centrum", Name: "Z-BOX Plzeň centrum", Street: "Americká 42",
			District: "Plzeň 3", City: "Plzeň", Kind: KindZBox, Nonstop: true,
			Location: geo.Point{Latitude: 49.7384, Longitude: 13.3736},
		},
		{
			ID: "zbox-olomouc-centrum", Name: "Z-BOX Olomouc centrum", Street: "Masarykova třída 10",
			District: "Olomouc", City: "Olomouc", Kind: KindZBox, Wheelchair: true, Nonstop: true,
			Location: geo.Point{Latitude: 49.5938, Longitude: 17.2509},
		},
		{
			ID: "point-bratislava-stare-mesto", Name: "Trafika Hlavná stanica", Street: "Predstaničné námestie 1",
			District: "Staré Mesto", City: "Bratislava", Kind: KindPoint,
			Location: geo.Point{Latitude: 48.1486, Longitude: 17.1077},
		},
	})
}
