package search

// domainContexts holds static search guidance per recognized domain: how people
// actually describe the work on their profiles, the evidence terms that prove
// it, and common title equivalences. Domains without a curated block get no
// context and the model works from the job text alone.
//
//nolint:gochecknoglobals // Static lookup table
var domainContexts = map[Domain]string{
	DomainSoftwareEngineering: `
## Software Engineering Context:

**Profile Language Patterns:**
- People say: "built", "developed", "implemented", "worked with"
- NOT: "proficiency in", "expertise in"
- Tools trump abstractions: "React" > "frontend framework"
- Action verbs matter: "deployed ML models" > "machine learning skills"

**Key Evidence Terms:**
- Languages: Python, JavaScript, Java, Go, Rust, C++
- Frameworks: React, Django, Flask, Node.js, Spring
- Cloud: AWS, Azure, GCP, EC2, Lambda, S3
- Tools: Docker, Kubernetes, Jenkins, Git, CI/CD

**Common Title Variations:**
- Software Engineer = Developer = SWE = Programmer
- Backend = Server-side = API Developer
- Full Stack = Full-stack = Fullstack
- DevOps = SRE = Platform Engineer

**Synonym Examples:**
"Machine Learning" → ML, AI, Data Science, "built models", "trained algorithms", TensorFlow, PyTorch
"Cloud" → AWS, Azure, GCP, "cloud infrastructure", "deployed to cloud", Docker, Kubernetes
`,
	DomainInternationalDevelopment: `
## International Development Context:

**Profile Language Patterns:**
- People say: "implemented project", "managed programme", "worked in"
- NOT: "project implementation expertise", "programme management proficiency"
- Donor names are critical: USAID, World Bank, UNDP, EU, DFID
- Geography matters: "East Africa", "field-based", "fragile states"

**Key Evidence Terms:**
- Sectors: WASH, M&E, MEAL, DRR, GBV, livelihoods, governance
- Donors: USAID, World Bank, UNDP, EU, DFID, AfDB, ADB
- Terms: capacity building, theory of change, logframe, field-based
- Locations: East Africa, West Africa, Sahel, MENA, South Asia

**Common Title Variations:**
- Project Manager = Programme Manager = PM = Project Coordinator
- M&E Specialist = MEAL Officer = Monitoring Officer
- WASH Specialist = Water Engineer = WASH Coordinator
- Team Leader = Chief of Party = Programme Director

**Synonym Examples:**
"M&E" → Monitoring and Evaluation, MEAL, "tracked indicators", "evaluated programs", logframe
"WASH" → Water Sanitation, "water projects", "sanitation programs", borehole, water supply
`,
	DomainFinance: `
## Finance Context:

**Profile Language Patterns:**
- People say: "analyzed", "modeled", "managed portfolio", "closed deals"
- NOT: "financial analysis expertise", "portfolio management skills"
- Certifications matter: CFA, FRM, CPA, Series 7
- Deal experience is concrete: "M&A transaction", "IPO", "$500M AUM"

**Key Evidence Terms:**
- Skills: financial modeling, valuation, DCF, LBO, due diligence
- Tools: Bloomberg, FactSet, Excel, Python, R
- Products: equity, fixed income, derivatives, structured products
- Regulations: Basel, Dodd-Frank, MiFID, SOX

**Common Title Variations:**
- Financial Analyst = Finance Analyst = Investment Analyst
- Portfolio Manager = Fund Manager = Asset Manager
- Investment Banking = IB = M&A Analyst

**Synonym Examples:**
"Financial Modeling" → DCF, valuation, "built models", Excel, "financial analysis"
"Risk Management" → "risk analysis", VaR, "stress testing", "risk assessment"
`,
}

// DomainContext returns the static guidance block for a recognized domain, or
// the empty string for auto_detect, general, or any domain without curated
// context. Total function over the Domain enumeration.
func DomainContext(domain Domain) (context string) {
	context = domainContexts[domain]
	return context
}
