package grid

func peopleColumns() []Column {
	return []Column{
		{ID: "name", Label: "Name"},
		{ID: "age", Label: "Age", Kind: KindNumber},
		{ID: "district", Label: "District"},
		{ID: "verified", Label: "Verified", Kind: KindCheckbox},
		{ID: "profile", Label: "Profile", Kind: KindComposite, Parts: []string{"gender", "district"}},
	}
}

func peopleRecords() []Record {
	return []Record{
		{"id": "p1", "name": "Asha Kumar", "age": 34, "district": "Pune", "verified": true, "gender": "F"},
		{"id": "p2", "name": "Ravi Shah", "age": 41.5, "district": "Surat", "verified": "0", "gender": "M"},
		{"id": "p3", "name": "Meena", "age": nil, "district": "", "verified": false, "gender": nil},
	}
}
