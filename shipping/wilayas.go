package shipping

// DeliveryPrice holds the per-method delivery cost for a wilaya, in DZD.
// A price of zero means the method is not offered there.
type DeliveryPrice struct {
	Domicile float64 `json:"domicile"`
	Stopdesk float64 `json:"stopdesk"`
}

// Wilaya is one row of the static shipping reference table.
type Wilaya struct {
	Name          string        `json:"name"`
	Communes      []string      `json:"communes"`
	DeliveryPrice DeliveryPrice `json:"deliveryPrice"`
}

// Wilayas maps the two-digit wilaya code to its reference data. The table
// is maintained by hand from the courier's rate sheet.
var Wilayas = map[string]Wilaya{
	"01": {Name: "Adrar", Communes: []string{"Adrar", "Reggane", "Aoulef", "Timimoun"}, DeliveryPrice: DeliveryPrice{Domicile: 1400, Stopdesk: 900}},
	"02": {Name: "Chlef", Communes: []string{"Chlef", "Ténès", "Boukadir", "Oued Fodda"}, DeliveryPrice: DeliveryPrice{Domicile: 750, Stopdesk: 450}},
	"03": {Name: "Laghouat", Communes: []string{"Laghouat", "Aflou", "Ksar El Hirane"}, DeliveryPrice: DeliveryPrice{Domicile: 950, Stopdesk: 600}},
	"04": {Name: "Oum El Bouaghi", Communes: []string{"Oum El Bouaghi", "Aïn Beïda", "Aïn M'lila"}, DeliveryPrice: DeliveryPrice{Domicile: 800, Stopdesk: 450}},
	"05": {Name: "Batna", Communes: []string{"Batna", "Barika", "Arris", "Merouana"}, DeliveryPrice: DeliveryPrice{Domicile: 750, Stopdesk: 450}},
	"06": {Name: "Béjaïa", Communes: []string{"Béjaïa", "Akbou", "Kherrata", "Souk El Ténine"}, DeliveryPrice: DeliveryPrice{Domicile: 750, Stopdesk: 450}},
	"07": {Name: "Biskra", Communes: []string{"Biskra", "Tolga", "Sidi Okba", "Ouled Djellal"}, DeliveryPrice: DeliveryPrice{Domicile: 850, Stopdesk: 500}},
	"08": {Name: "Béchar", Communes: []string{"Béchar", "Kenadsa", "Abadla"}, DeliveryPrice: DeliveryPrice{Domicile: 1100, Stopdesk: 650}},
	"09": {Name: "Blida", Communes: []string{"Blida", "Boufarik", "Larbaâ", "Mouzaïa", "El Affroun"}, DeliveryPrice: DeliveryPrice{Domicile: 600, Stopdesk: 400}},
	"10": {Name: "Bouira", Communes: []string{"Bouira", "Lakhdaria", "Sour El Ghozlane", "M'Chedallah"}, DeliveryPrice: DeliveryPrice{Domicile: 700, Stopdesk: 450}},
	"11": {Name: "Tamanrasset", Communes: []string{"Tamanrasset", "In Salah", "In Guezzam"}, DeliveryPrice: DeliveryPrice{Domicile: 1600, Stopdesk: 0}},
	"12": {Name: "Tébessa", Communes: []string{"Tébessa", "Cheria", "Bir El Ater", "El Aouinet"}, DeliveryPrice: DeliveryPrice{Domicile: 850, Stopdesk: 500}},
	"13": {Name: "Tlemcen", Communes: []string{"Tlemcen", "Maghnia", "Ghazaouet", "Remchi", "Sebdou"}, DeliveryPrice: DeliveryPrice{Domicile: 800, Stopdesk: 450}},
	"14": {Name: "Tiaret", Communes: []string{"Tiaret", "Frenda", "Sougueur", "Ksar Chellala"}, DeliveryPrice: DeliveryPrice{Domicile: 800, Stopdesk: 450}},
	"15": {Name: "Tizi Ouzou", Communes: []string{"Tizi Ouzou", "Azazga", "Draâ Ben Khedda", "Larbaâ Nath Irathen", "Tigzirt"}, DeliveryPrice: DeliveryPrice{Domicile: 700, Stopdesk: 450}},
	"16": {Name: "Alger", Communes: []string{"Alger Centre", "Bab El Oued", "El Harrach", "Hussein Dey", "Bab Ezzouar", "Birkhadem", "Dar El Beïda", "Draria", "Chéraga", "Zéralda"}, DeliveryPrice: DeliveryPrice{Domicile: 500, Stopdesk: 350}},
	"17": {Name: "Djelfa", Communes: []string{"Djelfa", "Messaad", "Aïn Oussera", "Hassi Bahbah"}, DeliveryPrice: DeliveryPrice{Domicile: 900, Stopdesk: 550}},
	"18": {Name: "Jijel", Communes: []string{"Jijel", "Taher", "El Milia"}, DeliveryPrice: DeliveryPrice{Domicile: 750, Stopdesk: 450}},
	"19": {Name: "Sétif", Communes: []string{"Sétif", "El Eulma", "Aïn Oulmene", "Bougaâ"}, DeliveryPrice: DeliveryPrice{Domicile: 700, Stopdesk: 450}},
	"20": {Name: "Saïda", Communes: []string{"Saïda", "El Hassasna", "Aïn El Hadjar"}, DeliveryPrice: DeliveryPrice{Domicile: 850, Stopdesk: 500}},
	"21": {Name: "Skikda", Communes: []string{"Skikda", "Collo", "Azzaba", "El Harrouch"}, DeliveryPrice: DeliveryPrice{Domicile: 750, Stopdesk: 450}},
	"22": {Name: "Sidi Bel Abbès", Communes: []string{"Sidi Bel Abbès", "Telagh", "Sfisef"}, DeliveryPrice: DeliveryPrice{Domicile: 800, Stopdesk: 450}},
	"23": {Name: "Annaba", Communes: []string{"Annaba", "El Bouni", "El Hadjar", "Berrahal"}, DeliveryPrice: DeliveryPrice{Domicile: 750, Stopdesk: 450}},
	"24": {Name: "Guelma", Communes: []string{"Guelma", "Oued Zenati", "Bouchegouf"}, DeliveryPrice: DeliveryPrice{Domicile: 800, Stopdesk: 450}},
	"25": {Name: "Constantine", Communes: []string{"Constantine", "El Khroub", "Aïn Smara", "Didouche Mourad", "Zighoud Youcef"}, DeliveryPrice: DeliveryPrice{Domicile: 700, Stopdesk: 400}},
	"26": {Name: "Médéa", Communes: []string{"Médéa", "Berrouaghia", "Ksar El Boukhari", "Tablat"}, DeliveryPrice: DeliveryPrice{Domicile: 700, Stopdesk: 450}},
	"27": {Name: "Mostaganem", Communes: []string{"Mostaganem", "Aïn Tedeles", "Hassi Mameche"}, DeliveryPrice: DeliveryPrice{Domicile: 750, Stopdesk: 450}},
	"28": {Name: "M'Sila", Communes: []string{"M'Sila", "Bou Saâda", "Sidi Aïssa", "Magra"}, DeliveryPrice: DeliveryPrice{Domicile: 850, Stopdesk: 500}},
	"29": {Name: "Mascara", Communes: []string{"Mascara", "Sig", "Mohammadia", "Tighennif"}, DeliveryPrice: DeliveryPrice{Domicile: 800, Stopdesk: 450}},
	"30": {Name: "Ouargla", Communes: []string{"Ouargla", "Hassi Messaoud", "Touggourt"}, DeliveryPrice: DeliveryPrice{Domicile: 1000, Stopdesk: 600}},
	"31": {Name: "Oran", Communes: []string{"Oran", "Es Sénia", "Bir El Djir", "Aïn El Turk", "Arzew", "Gdyel"}, DeliveryPrice: DeliveryPrice{Domicile: 650, Stopdesk: 400}},
	"32": {Name: "El Bayadh", Communes: []string{"El Bayadh", "Bougtob", "Brezina"}, DeliveryPrice: DeliveryPrice{Domicile: 1050, Stopdesk: 600}},
	"33": {Name: "Illizi", Communes: []string{"Illizi", "Djanet", "In Amenas"}, DeliveryPrice: DeliveryPrice{Domicile: 0, Stopdesk: 0}},
	"34": {Name: "Bordj Bou Arréridj", Communes: []string{"Bordj Bou Arréridj", "Ras El Oued", "Medjana"}, DeliveryPrice: DeliveryPrice{Domicile: 750, Stopdesk: 450}},
	"35": {Name: "Boumerdès", Communes: []string{"Boumerdès", "Boudouaou", "Bordj Menaïel", "Dellys", "Thénia"}, DeliveryPrice: DeliveryPrice{Domicile: 600, Stopdesk: 400}},
	"36": {Name: "El Tarf", Communes: []string{"El Tarf", "El Kala", "Dréan", "Ben M'Hidi"}, DeliveryPrice: DeliveryPrice{Domicile: 800, Stopdesk: 450}},
	"37": {Name: "Tindouf", Communes: []string{"Tindouf", "Oum El Assel"}, DeliveryPrice: DeliveryPrice{Domicile: 1600, Stopdesk: 0}},
	"38": {Name: "Tissemsilt", Communes: []string{"Tissemsilt", "Theniet El Had", "Bordj Bounaama"}, DeliveryPrice: DeliveryPrice{Domicile: 850, Stopdesk: 500}},
	"39": {Name: "El Oued", Communes: []string{"El Oued", "Guemar", "Debila", "Robbah"}, DeliveryPrice: DeliveryPrice{Domicile: 950, Stopdesk: 600}},
	"40": {Name: "Khenchela", Communes: []string{"Khenchela", "Kais", "Chechar"}, DeliveryPrice: DeliveryPrice{Domicile: 850, Stopdesk: 500}},
	"41": {Name: "Souk Ahras", Communes: []string{"Souk Ahras", "Sedrata", "M'daourouch"}, DeliveryPrice: DeliveryPrice{Domicile: 850, Stopdesk: 500}},
	"42": {Name: "Tipaza", Communes: []string{"Tipaza", "Koléa", "Cherchell", "Hadjout", "Fouka"}, DeliveryPrice: DeliveryPrice{Domicile: 650, Stopdesk: 400}},
	"43": {Name: "Mila", Communes: []string{"Mila", "Chelghoum Laïd", "Ferdjioua"}, DeliveryPrice: DeliveryPrice{Domicile: 750, Stopdesk: 450}},
	"44": {Name: "Aïn Defla", Communes: []string{"Aïn Defla", "Khemis Miliana", "El Attaf", "Miliana"}, DeliveryPrice: DeliveryPrice{Domicile: 750, Stopdesk: 450}},
	"45": {Name: "Naâma", Communes: []string{"Naâma", "Mécheria", "Aïn Sefra"}, DeliveryPrice: DeliveryPrice{Domicile: 1100, Stopdesk: 0}},
	"46": {Name: "Aïn Témouchent", Communes: []string{"Aïn Témouchent", "Hammam Bou Hadjar", "Beni Saf", "El Malah"}, DeliveryPrice: DeliveryPrice{Domicile: 800, Stopdesk: 450}},
	"47": {Name: "Ghardaïa", Communes: []string{"Ghardaïa", "Metlili", "El Guerrara", "Berriane"}, DeliveryPrice: DeliveryPrice{Domicile: 950, Stopdesk: 600}},
	"48": {Name: "Relizane", Communes: []string{"Relizane", "Oued Rhiou", "Mazouna", "Zemmora"}, DeliveryPrice: DeliveryPrice{Domicile: 800, Stopdesk: 450}},
	"49": {Name: "El M'Ghair", Communes: []string{"El M'Ghair", "Djamaa", "Sidi Amrane"}, DeliveryPrice: DeliveryPrice{Domicile: 1000, Stopdesk: 0}},
	"50": {Name: "El Meniaa", Communes: []string{"El Meniaa", "Hassi Gara"}, DeliveryPrice: DeliveryPrice{Domicile: 1100, Stopdesk: 0}},
	"51": {Name: "Ouled Djellal", Communes: []string{"Ouled Djellal", "Sidi Khaled", "Doucen"}, DeliveryPrice: DeliveryPrice{Domicile: 950, Stopdesk: 550}},
	"52": {Name: "Bordj Badji Mokhtar", Communes: []string{"Bordj Badji Mokhtar", "Timiaouine"}, DeliveryPrice: DeliveryPrice{Domicile: 0, Stopdesk: 0}},
	"53": {Name: "Béni Abbès", Communes: []string{"Béni Abbès", "Igli", "Kerzaz"}, DeliveryPrice: DeliveryPrice{Domicile: 1300, Stopdesk: 0}},
	"54": {Name: "Timimoun", Communes: []string{"Timimoun", "Aougrout", "Charouine"}, DeliveryPrice: DeliveryPrice{Domicile: 1400, Stopdesk: 0}},
	"55": {Name: "Touggourt", Communes: []string{"Touggourt", "Témacine", "Megarine"}, DeliveryPrice: DeliveryPrice{Domicile: 1000, Stopdesk: 600}},
	"56": {Name: "Djanet", Communes: []string{"Djanet", "Bordj El Haouas"}, DeliveryPrice: DeliveryPrice{Domicile: 0, Stopdesk: 0}},
	"57": {Name: "In Salah", Communes: []string{"In Salah", "Foggaret Ezzaouia"}, DeliveryPrice: DeliveryPrice{Domicile: 1500, Stopdesk: 0}},
	"58": {Name: "In Guezzam", Communes: []string{"In Guezzam", "Tin Zaouatine"}, DeliveryPrice: DeliveryPrice{Domicile: 0, Stopdesk: 0}},
}
