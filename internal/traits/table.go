package traits

// table maps every trait name the picker offers to its model. Several names
// share a model, and the names of earlier trait lists are kept so saved
// selections still resolve.
var table = map[string]string{
	// extremophile
	"Thermophilic":           "thermophilic",
	"Radioresistance":        "radioresistance",
	"Psychrophilic":          "psychrophilic",
	"Halophilic":             "halophilic",
	"Acidophilic":            "acidophilic",
	"Barophilic":             "barophilic",
	"Desiccation Resistance": "desiccation",
	"Alkaliphilic":           "alkaliphilic",

	// plant
	"C4 Photosynthesis":   "c4-photosynthesis",
	"CAM Photosynthesis":  "c4-photosynthesis",
	"Drought Resistance":  "drought",
	"Nitrogen Fixation":   "nitrogen-fixation",
	"Rapid Cell Division": "fast-growth",
	"Deep Root System":    "deep-root",
	"UV-B Protection":     "uv-protection",
	"Salinity Tolerance":  "halophilic",
	"Fast Growth":         "fast-growth",
	"Deep Root":           "deep-root",
	"UV Protection":       "uv-protection",

	// marine
	"Bioluminescence":      "bioluminescence",
	"Pressure Adaptation":  "pressure-adaptation",
	"Jet Propulsion":       "jet-propulsion",
	"Ink Production":       "ink",
	"Electric Organ":       "electric-organ",
	"Coral Symbiosis":      "coral-symbiosis",
	"Chromatophore System": "chromatophore",
	"Osmoregulation":       "osmoregulation",

	// insect
	"Exoskeleton":             "exoskeleton",
	"Compound Eyes":           "compound-eyes",
	"Metamorphosis":           "metamorphosis",
	"Flight Muscles":          "flight-muscles",
	"Pheromone Communication": "pheromone",
	"Hive Mind Behavior":      "hive-mind",
	"Venom Synthesis":         "venom-synthesis",
	"Super Strength":          "super-strength",

	// fungal
	"Mycelium Network":      "mycelium",
	"Lignin Decomposition":  "lignin",
	"Mycorrhizal Symbiosis": "symbiosis",
	"Spore Dormancy":        "spore-formation",
	"Antibiotic Production": "bioplastic",
	"Plastic Degradation":   "lignin",
	"Psychedelic Compounds": "bioluminescence",
	"Symbiosis":             "symbiosis",
	"Spore Formation":       "spore-formation",

	// synthetic
	"Biosensor (Arsenic)":        "biosensor",
	"Bioplastic (PHA)":           "bioplastic",
	"Heavy Metal Bioremediation": "metal-accumulation",
	"Biofuel Production":         "oxygen-production",
	"CRISPR Self-Repair":         "self-repair",
	"Quorum Sensing":             "biosensor",
	"Genetic Kill Switch":        "self-repair",
	"Carbon Capture Enhanced":    "c4-photosynthesis",
	"Biosensor":                  "biosensor",
	"Bioplastic Production":      "bioplastic",
	"Metal Accumulation":         "metal-accumulation",
	"Oxygen Production":          "oxygen-production",
	"Self-Repair":                "self-repair",
	"Biofilm Resistance":         "biofilm-resistance",

	// animal
	"Limb Regeneration":   "regeneration",
	"Antifreeze Proteins": "antifreeze-protein",
	"Spider Silk":         "silk-production",
	"Echolocation":        "biosensor",
	"Hibernation":         "psychrophilic",
	"Infrared Vision":     "biosensor",
	"Magnetic Navigation": "biosensor",
	"Venomous Bite":       "venom-synthesis",
	"Regeneration":        "regeneration",
	"Antifreeze Protein":  "antifreeze-protein",
	"Silk Production":     "silk-production",
	"Camouflage":          "camouflage",

	// chemosynthetic
	"Sulfur Oxidation":    "sulfur-oxidation",
	"Iron Oxidation":      "iron-oxidation",
	"Hydrogen Metabolism": "hydrogen",
	"Methane Oxidation":   "methane",
	"Ammonia Oxidation":   "ammonia",
	"Arsenite Oxidation":  "arsenite",

	// immune defense
	"CRISPR Immunity":              "self-repair",
	"Antimicrobial Peptides":       "venom-synthesis",
	"Antiviral RNA Silencing":      "self-repair",
	"Oxidative Burst":              "oxygen-production",
	"Hypersensitive Response":      "venom-synthesis",
	"Systemic Acquired Resistance": "biofilm-resistance",

	// neural and sensory
	"Electroreception":           "electric-organ",
	"Distributed Neural Network": "mycelium",
	"Photoreceptor Diversity":    "compound-eyes",
	"Magnetoreception":           "biosensor",
	"Lateral Line System":        "osmoregulation",
	"Rapid Learning":             "biosensor",
}
