package knowledge

// Static reference data. Read-only after process start.
var diseases = map[Label]Disease{
	Blight: {
		Info: "Northern Corn Leaf Blight is a fungal disease caused by Exserohilum turcicum. " +
			"It appears as cigar-shaped lesions with dark borders on corn leaves, reducing " +
			"photosynthetic area and potentially causing significant yield loss.",
		Symptoms: []string{
			"Long, elliptical gray-green to tan colored lesions",
			"Lesions may have dark borders",
			"Lesions typically 1-6 inches long",
			"May cause premature leaf death",
		},
		Causes: []string{
			"High humidity (above 90%)",
			"Moderate temperatures (64-81°F)",
			"Poor air circulation",
			"Infected crop residue",
			"Susceptible corn varieties",
		},
		ImmediateActions: []string{
			"Remove and destroy infected plant debris",
			"Improve air circulation around plants",
			"Avoid overhead irrigation if possible",
			"Apply fungicide if infection is severe",
		},
		Treatments: []string{
			"Fungicides: Propiconazole, Azoxystrobin, or Pyraclostrobin",
			"Copper-based fungicides for organic treatment",
			"Apply treatments at first sign of disease",
			"Repeat applications every 7-14 days as needed",
		},
		Prevention: []string{
			"Plant resistant varieties when available",
			"Practice crop rotation (avoid corn-after-corn)",
			"Manage crop residue properly",
			"Ensure proper plant spacing for air circulation",
			"Monitor weather conditions and apply preventive treatments",
		},
		Solution: "Apply recommended fungicides immediately and improve field ventilation. " +
			"Consider resistant varieties for next season.",
	},

	CommonRust: {
		Info: "Common rust is caused by the fungus Puccinia sorghi. It appears as small, " +
			"reddish-brown pustules (uredinia) on both sides of corn leaves. While generally " +
			"not as destructive as other diseases, it can reduce yield under favorable conditions.",
		Symptoms: []string{
			"Small, reddish-brown pustules on leaves",
			"Pustules on both upper and lower leaf surfaces",
			"Pustules may turn black later in season",
			"Yellow halo may surround pustules",
		},
		Causes: []string{
			"Cool, moist weather conditions",
			"High humidity",
			"Temperatures between 60-77°F",
			"Poor air circulation",
			"Susceptible varieties",
		},
		ImmediateActions: []string{
			"Monitor field regularly for early detection",
			"Remove severely infected leaves if practical",
			"Improve air circulation",
			"Consider fungicide application if spreading rapidly",
		},
		Treatments: []string{
			"Fungicides: Tebuconazole, Propiconazole, or Azoxystrobin",
			"Triazole-based fungicides are most effective",
			"Apply when 5-10% of plants show symptoms",
			"Organic options: Copper fungicides, neem oil",
		},
		Prevention: []string{
			"Plant resistant hybrids",
			"Ensure adequate plant spacing",
			"Avoid excessive nitrogen fertilization",
			"Practice crop rotation",
			"Remove alternate hosts (oxalis plants) if present",
		},
		Solution: "Use resistant hybrids and apply fungicides when symptoms first appear. " +
			"Monitor weather conditions closely.",
	},

	GrayLeafSpot: {
		Info: "Gray Leaf Spot is caused by the fungus Cercospora zeae-maydis. It produces " +
			"rectangular, gray to tan lesions with yellow halos on corn leaves. This disease " +
			"thrives in warm, humid conditions and can cause significant yield loss.",
		Symptoms: []string{
			"Rectangular gray to tan lesions",
			"Lesions are parallel to leaf veins",
			"Yellow halo around lesions",
			"Lesions may merge to form large necrotic areas",
			"Premature leaf death in severe cases",
		},
		Causes: []string{
			"High humidity (>90%)",
			"Warm temperatures (75-85°F)",
			"Extended leaf wetness",
			"Poor air circulation",
			"Continuous corn production",
			"Infected crop residue",
		},
		ImmediateActions: []string{
			"Scout fields regularly during humid weather",
			"Remove infected plant debris",
			"Improve air circulation around plants",
			"Apply fungicide at early symptoms",
		},
		Treatments: []string{
			"Fungicides: Azoxystrobin, Pyraclostrobin, or Propiconazole",
			"Strobilurin fungicides are highly effective",
			"Apply at tasseling stage or when symptoms first appear",
			"Tank mix with triazole fungicides for better control",
		},
		Prevention: []string{
			"Use resistant or tolerant hybrids",
			"Practice minimum 2-year rotation away from corn",
			"Manage crop residue through tillage",
			"Ensure proper plant population and spacing",
			"Apply preventive fungicides in high-risk areas",
		},
		Solution: "Apply strobilurin-based fungicides as needed and practice crop rotation " +
			"to break disease cycle.",
	},

	Healthy: {
		Info: "The leaf appears healthy with no visible signs of disease. This indicates " +
			"good plant health and proper management practices.",
		Symptoms: []string{
			"Green, vibrant leaf color",
			"No visible lesions or spots",
			"Normal leaf texture and structure",
			"No signs of chlorosis or necrosis",
		},
		Causes: []string{
			"Proper nutrient management",
			"Adequate moisture levels",
			"Good air circulation",
			"Disease-resistant varieties",
			"Effective pest management",
		},
		ImmediateActions: []string{
			"Continue current management practices",
			"Monitor regularly for any changes",
			"Maintain proper nutrition and irrigation",
			"Keep detailed records of successful practices",
		},
		Treatments: []string{
			"No treatment required",
			"Continue preventive measures",
			"Monitor for early signs of any issues",
		},
		Prevention: []string{
			"Continue current successful practices",
			"Regular field monitoring",
			"Maintain plant nutrition program",
			"Ensure proper irrigation management",
			"Keep detailed management records",
		},
		Solution: "No action required. Maintain current good management practices and " +
			"continue regular monitoring.",
	},
}
