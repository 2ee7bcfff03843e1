package catalog

// defaultEntries is the shop's category table. Order matters.
var defaultEntries = []Entry{
	{"balyasiny", "Балясины", "SK50"},
	{"cifry", "Цифры и буквы", "SK"},
	{"cvety", "Цветы кованые", "SK"},
	{"decor-elementy", "Декоративные элементы", "SK"},
	{"dekor-paneli", "Декоративные панели", "SK"},
	{"korzinki", "Корзинки", "SK"},
	{"listya", "Листья кованые", "SK22"},
	{"nakladki", "Накладки", "SK"},
	{"nakonechniki", "Наконечники и навершия", "SK"},
	{"osnovaniya", "Основания балясин", "SK34"},
	{"perekhody", "Переходы на трубы", "SK"},
	{"piki", "Пики кованые", "SK30"},
	{"plast-zaglushki", "Пластиковые заглушки", "SK"},
	{"pochtovye-yashiki", "Почтовые ящики", "SK"},
	{"polusfery", "Полусферы", "SK01"},
	{"poruchen", "Поручни и окончания", "SK"},
	{"ruchki", "Ручки дверные", "SK"},
	{"shary", "Шары и сферы", "SK"},
	{"stolby", "Столбы начальные", "SK"},
	{"venzelia", "Вензеля и волюты", "SK"},
	{"vinograd", "Виноград", "SK"},
	{"vstavki", "Вставки в балясины", "SK"},
	{"zaglushki", "Заглушки и крышки", "SK"},
	{"zaklepki", "Заклёпки", "SK"},
}

var defaultTable = MustNewTable(defaultEntries)

// Default returns the built-in category table.
func Default() Table {
	return defaultTable
}
