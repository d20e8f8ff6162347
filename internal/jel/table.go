package jel

// curatedTable is the embedded JEL classification table: all primary
// letters, the full two-digit layer, and a curated set of three-digit
// codes. Three-digit codes outside the table still resolve via Describe
// as long as their two-digit parent is present.
var curatedTable = []Entry{
	// Primary categories
	{Code: "A", Level: 1, Description: "General Economics and Teaching"},
	{Code: "B", Level: 1, Description: "History of Economic Thought, Methodology, and Heterodox Approaches"},
	{Code: "C", Level: 1, Description: "Mathematical and Quantitative Methods"},
	{Code: "D", Level: 1, Description: "Microeconomics"},
	{Code: "E", Level: 1, Description: "Macroeconomics and Monetary Economics"},
	{Code: "F", Level: 1, Description: "International Economics"},
	{Code: "G", Level: 1, Description: "Financial Economics"},
	{Code: "H", Level: 1, Description: "Public Economics"},
	{Code: "I", Level: 1, Description: "Health, Education, and Welfare"},
	{Code: "J", Level: 1, Description: "Labor and Demographic Economics"},
	{Code: "K", Level: 1, Description: "Law and Economics"},
	{Code: "L", Level: 1, Description: "Industrial Organization"},
	{Code: "M", Level: 1, Description: "Business Administration and Business Economics; Marketing; Accounting; Personnel Economics"},
	{Code: "N", Level: 1, Description: "Economic History"},
	{Code: "O", Level: 1, Description: "Economic Development, Innovation, Technological Change, and Growth"},
	{Code: "P", Level: 1, Description: "Political Economy and Comparative Economic Systems"},
	{Code: "Q", Level: 1, Description: "Agricultural and Natural Resource Economics; Environmental and Ecological Economics"},
	{Code: "R", Level: 1, Description: "Urban, Rural, Regional, Real Estate, and Transportation Economics"},
	{Code: "Y", Level: 1, Description: "Miscellaneous Categories"},
	{Code: "Z", Level: 1, Description: "Other Special Topics"},

	// Two-digit subcategories
	{Code: "A1", Level: 2, Description: "General Economics", ParentCode: "A"},
	{Code: "A2", Level: 2, Description: "Economics Education and Teaching of Economics", ParentCode: "A"},
	{Code: "A3", Level: 2, Description: "Collective Works", ParentCode: "A"},

	{Code: "B0", Level: 2, Description: "General", ParentCode: "B"},
	{Code: "B1", Level: 2, Description: "History of Economic Thought through 1925", ParentCode: "B"},
	{Code: "B2", Level: 2, Description: "History of Economic Thought since 1925", ParentCode: "B"},
	{Code: "B3", Level: 2, Description: "History of Economic Thought: Individuals", ParentCode: "B"},
	{Code: "B4", Level: 2, Description: "Economic Methodology", ParentCode: "B"},
	{Code: "B5", Level: 2, Description: "Current Heterodox Approaches", ParentCode: "B"},

	{Code: "C0", Level: 2, Description: "General", ParentCode: "C"},
	{Code: "C1", Level: 2, Description: "Econometric and Statistical Methods and Methodology: General", ParentCode: "C"},
	{Code: "C2", Level: 2, Description: "Single Equation Models; Single Variables", ParentCode: "C"},
	{Code: "C3", Level: 2, Description: "Multiple or Simultaneous Equation Models; Multiple Variables", ParentCode: "C"},
	{Code: "C4", Level: 2, Description: "Econometric and Statistical Methods: Special Topics", ParentCode: "C"},
	{Code: "C5", Level: 2, Description: "Econometric Modeling", ParentCode: "C"},
	{Code: "C6", Level: 2, Description: "Mathematical Methods; Programming Models; Mathematical and Simulation Modeling", ParentCode: "C"},
	{Code: "C7", Level: 2, Description: "Game Theory and Bargaining Theory", ParentCode: "C"},
	{Code: "C8", Level: 2, Description: "Data Collection and Data Estimation Methodology; Computer Programs", ParentCode: "C"},
	{Code: "C9", Level: 2, Description: "Design of Experiments", ParentCode: "C"},

	{Code: "D0", Level: 2, Description: "General", ParentCode: "D"},
	{Code: "D1", Level: 2, Description: "Household Behavior and Family Economics", ParentCode: "D"},
	{Code: "D2", Level: 2, Description: "Production and Organizations", ParentCode: "D"},
	{Code: "D3", Level: 2, Description: "Distribution", ParentCode: "D"},
	{Code: "D4", Level: 2, Description: "Market Structure, Pricing, and Design", ParentCode: "D"},
	{Code: "D5", Level: 2, Description: "General Equilibrium and Disequilibrium", ParentCode: "D"},
	{Code: "D6", Level: 2, Description: "Welfare Economics", ParentCode: "D"},
	{Code: "D7", Level: 2, Description: "Analysis of Collective Decision-Making", ParentCode: "D"},
	{Code: "D8", Level: 2, Description: "Information, Knowledge, and Uncertainty", ParentCode: "D"},
	{Code: "D9", Level: 2, Description: "Intertemporal Choice", ParentCode: "D"},

	{Code: "E0", Level: 2, Description: "General", ParentCode: "E"},
	{Code: "E1", Level: 2, Description: "General Aggregative Models", ParentCode: "E"},
	{Code: "E2", Level: 2, Description: "Consumption, Saving, Production, Investment, Labor Markets, and Informal Economy", ParentCode: "E"},
	{Code: "E3", Level: 2, Description: "Prices, Business Fluctuations, and Cycles", ParentCode: "E"},
	{Code: "E4", Level: 2, Description: "Money and Interest Rates", ParentCode: "E"},
	{Code: "E5", Level: 2, Description: "Monetary Policy, Central Banking, and the Supply of Money and Credit", ParentCode: "E"},
	{Code: "E6", Level: 2, Description: "Macroeconomic Policy, Macroeconomic Aspects of Public Finance, and General Outlook", ParentCode: "E"},
	{Code: "E7", Level: 2, Description: "Macro-Based Behavioral Economics", ParentCode: "E"},

	{Code: "F0", Level: 2, Description: "General", ParentCode: "F"},
	{Code: "F1", Level: 2, Description: "Trade", ParentCode: "F"},
	{Code: "F2", Level: 2, Description: "International Factor Movements and International Business", ParentCode: "F"},
	{Code: "F3", Level: 2, Description: "International Finance", ParentCode: "F"},
	{Code: "F4", Level: 2, Description: "Macroeconomic Aspects of International Trade and Finance", ParentCode: "F"},
	{Code: "F5", Level: 2, Description: "International Relations, National Security, and International Political Economy", ParentCode: "F"},
	{Code: "F6", Level: 2, Description: "Economic Impacts of Globalization", ParentCode: "F"},

	{Code: "G0", Level: 2, Description: "General", ParentCode: "G"},
	{Code: "G1", Level: 2, Description: "General Financial Markets", ParentCode: "G"},
	{Code: "G2", Level: 2, Description: "Financial Institutions and Services", ParentCode: "G"},
	{Code: "G3", Level: 2, Description: "Corporate Finance and Governance", ParentCode: "G"},
	{Code: "G4", Level: 2, Description: "Behavioral Finance", ParentCode: "G"},
	{Code: "G5", Level: 2, Description: "Household Finance", ParentCode: "G"},

	{Code: "H0", Level: 2, Description: "General", ParentCode: "H"},
	{Code: "H1", Level: 2, Description: "Structure and Scope of Government", ParentCode: "H"},
	{Code: "H2", Level: 2, Description: "Taxation, Subsidies, and Revenue", ParentCode: "H"},
	{Code: "H3", Level: 2, Description: "Fiscal Policies and Behavior of Economic Agents", ParentCode: "H"},
	{Code: "H4", Level: 2, Description: "Publicly Provided Goods", ParentCode: "H"},
	{Code: "H5", Level: 2, Description: "National Government Expenditures and Related Policies", ParentCode: "H"},
	{Code: "H6", Level: 2, Description: "National Budget, Deficit, and Debt", ParentCode: "H"},
	{Code: "H7", Level: 2, Description: "State and Local Government; Intergovernmental Relations", ParentCode: "H"},
	{Code: "H8", Level: 2, Description: "Miscellaneous Issues", ParentCode: "H"},

	{Code: "I0", Level: 2, Description: "General", ParentCode: "I"},
	{Code: "I1", Level: 2, Description: "Health", ParentCode: "I"},
	{Code: "I2", Level: 2, Description: "Education and Research Institutions", ParentCode: "I"},
	{Code: "I3", Level: 2, Description: "Welfare, Well-Being, and Poverty", ParentCode: "I"},

	{Code: "J0", Level: 2, Description: "General", ParentCode: "J"},
	{Code: "J1", Level: 2, Description: "Demographic Economics", ParentCode: "J"},
	{Code: "J2", Level: 2, Description: "Demand and Supply of Labor", ParentCode: "J"},
	{Code: "J3", Level: 2, Description: "Wages, Compensation, and Labor Costs", ParentCode: "J"},
	{Code: "J4", Level: 2, Description: "Particular Labor Markets", ParentCode: "J"},
	{Code: "J5", Level: 2, Description: "Labor-Management Relations, Trade Unions, and Collective Bargaining", ParentCode: "J"},
	{Code: "J6", Level: 2, Description: "Mobility, Unemployment, Vacancies, and Immigrant Workers", ParentCode: "J"},
	{Code: "J7", Level: 2, Description: "Labor Discrimination", ParentCode: "J"},
	{Code: "J8", Level: 2, Description: "Labor Standards: National and International", ParentCode: "J"},

	{Code: "K0", Level: 2, Description: "General", ParentCode: "K"},
	{Code: "K1", Level: 2, Description: "Basic Areas of Law", ParentCode: "K"},
	{Code: "K2", Level: 2, Description: "Regulation and Business Law", ParentCode: "K"},
	{Code: "K3", Level: 2, Description: "Other Substantive Areas of Law", ParentCode: "K"},
	{Code: "K4", Level: 2, Description: "Legal Procedure, the Legal System, and Illegal Behavior", ParentCode: "K"},

	{Code: "L0", Level: 2, Description: "General", ParentCode: "L"},
	{Code: "L1", Level: 2, Description: "Market Structure, Firm Strategy, and Market Performance", ParentCode: "L"},
	{Code: "L2", Level: 2, Description: "Firm Objectives, Organization, and Behavior", ParentCode: "L"},
	{Code: "L3", Level: 2, Description: "Nonprofit Organizations and Public Enterprise", ParentCode: "L"},
	{Code: "L4", Level: 2, Description: "Antitrust Issues and Policies", ParentCode: "L"},
	{Code: "L5", Level: 2, Description: "Regulation and Industrial Policy", ParentCode: "L"},
	{Code: "L6", Level: 2, Description: "Industry Studies: Manufacturing", ParentCode: "L"},
	{Code: "L7", Level: 2, Description: "Industry Studies: Primary Products and Construction", ParentCode: "L"},
	{Code: "L8", Level: 2, Description: "Industry Studies: Services", ParentCode: "L"},
	{Code: "L9", Level: 2, Description: "Industry Studies: Transportation and Utilities", ParentCode: "L"},

	{Code: "M0", Level: 2, Description: "General", ParentCode: "M"},
	{Code: "M1", Level: 2, Description: "Business Administration", ParentCode: "M"},
	{Code: "M2", Level: 2, Description: "Business Economics", ParentCode: "M"},
	{Code: "M3", Level: 2, Description: "Marketing and Advertising", ParentCode: "M"},
	{Code: "M4", Level: 2, Description: "Accounting and Auditing", ParentCode: "M"},
	{Code: "M5", Level: 2, Description: "Personnel Economics", ParentCode: "M"},

	{Code: "N0", Level: 2, Description: "General", ParentCode: "N"},
	{Code: "N1", Level: 2, Description: "Macroeconomics and Monetary Economics; Industrial Structure; Growth; Fluctuations", ParentCode: "N"},
	{Code: "N2", Level: 2, Description: "Financial Markets and Institutions", ParentCode: "N"},
	{Code: "N3", Level: 2, Description: "Labor and Consumers, Demography, Education, Health, Welfare, Income, Wealth, Religion, and Philanthropy", ParentCode: "N"},
	{Code: "N4", Level: 2, Description: "Government, War, Law, International Relations, and Regulation", ParentCode: "N"},
	{Code: "N5", Level: 2, Description: "Agriculture, Natural Resources, Environment, and Extractive Industries", ParentCode: "N"},
	{Code: "N6", Level: 2, Description: "Manufacturing and Construction", ParentCode: "N"},
	{Code: "N7", Level: 2, Description: "Transport, Trade, Energy, Technology, and Other Services", ParentCode: "N"},

	{Code: "O1", Level: 2, Description: "Economic Development", ParentCode: "O"},
	{Code: "O2", Level: 2, Description: "Development Planning and Policy", ParentCode: "O"},
	{Code: "O3", Level: 2, Description: "Innovation; Research and Development; Technological Change; Intellectual Property Rights", ParentCode: "O"},
	{Code: "O4", Level: 2, Description: "Economic Growth and Aggregate Productivity", ParentCode: "O"},
	{Code: "O5", Level: 2, Description: "Economywide Country Studies", ParentCode: "O"},

	{Code: "P0", Level: 2, Description: "General", ParentCode: "P"},
	{Code: "P1", Level: 2, Description: "Capitalist Systems", ParentCode: "P"},
	{Code: "P2", Level: 2, Description: "Socialist Systems and Transitional Economies", ParentCode: "P"},
	{Code: "P3", Level: 2, Description: "Socialist Institutions and Their Transitions", ParentCode: "P"},
	{Code: "P4", Level: 2, Description: "Other Economic Systems", ParentCode: "P"},
	{Code: "P5", Level: 2, Description: "Comparative Economic Systems", ParentCode: "P"},

	{Code: "Q0", Level: 2, Description: "General", ParentCode: "Q"},
	{Code: "Q1", Level: 2, Description: "Agriculture", ParentCode: "Q"},
	{Code: "Q2", Level: 2, Description: "Renewable Resources and Conservation", ParentCode: "Q"},
	{Code: "Q3", Level: 2, Description: "Nonrenewable Resources and Conservation", ParentCode: "Q"},
	{Code: "Q4", Level: 2, Description: "Energy", ParentCode: "Q"},
	{Code: "Q5", Level: 2, Description: "Environmental Economics", ParentCode: "Q"},

	{Code: "R0", Level: 2, Description: "General", ParentCode: "R"},
	{Code: "R1", Level: 2, Description: "General Regional Economics", ParentCode: "R"},
	{Code: "R2", Level: 2, Description: "Household Analysis", ParentCode: "R"},
	{Code: "R3", Level: 2, Description: "Real Estate Markets, Spatial Production Analysis, and Firm Location", ParentCode: "R"},
	{Code: "R4", Level: 2, Description: "Transportation Economics", ParentCode: "R"},
	{Code: "R5", Level: 2, Description: "Regional Government Analysis", ParentCode: "R"},

	{Code: "Y1", Level: 2, Description: "Data: Tables and Charts", ParentCode: "Y"},
	{Code: "Y2", Level: 2, Description: "Introductory Material", ParentCode: "Y"},
	{Code: "Y3", Level: 2, Description: "Book Reviews", ParentCode: "Y"},
	{Code: "Y4", Level: 2, Description: "Dissertations", ParentCode: "Y"},
	{Code: "Y5", Level: 2, Description: "Further Reading", ParentCode: "Y"},
	{Code: "Y6", Level: 2, Description: "Excerpts", ParentCode: "Y"},
	{Code: "Y8", Level: 2, Description: "Related Disciplines", ParentCode: "Y"},
	{Code: "Y9", Level: 2, Description: "Other", ParentCode: "Y"},

	{Code: "Z0", Level: 2, Description: "General", ParentCode: "Z"},
	{Code: "Z1", Level: 2, Description: "Cultural Economics; Economic Sociology; Economic Anthropology", ParentCode: "Z"},
	{Code: "Z2", Level: 2, Description: "Sports Economics", ParentCode: "Z"},
	{Code: "Z3", Level: 2, Description: "Tourism Economics", ParentCode: "Z"},

	// Curated three-digit codes
	{Code: "C13", Level: 3, Description: "Estimation: General", ParentCode: "C1"},
	{Code: "C14", Level: 3, Description: "Semiparametric and Nonparametric Methods: General", ParentCode: "C1"},
	{Code: "C21", Level: 3, Description: "Cross-Sectional Models; Spatial Models; Treatment Effect Models; Quantile Regressions", ParentCode: "C2"},
	{Code: "C22", Level: 3, Description: "Time-Series Models; Dynamic Quantile Regressions; Dynamic Treatment Effect Models; Diffusion Processes", ParentCode: "C2"},
	{Code: "C23", Level: 3, Description: "Panel Data Models; Spatio-temporal Models", ParentCode: "C2"},
	{Code: "C25", Level: 3, Description: "Discrete Regression and Qualitative Choice Models; Discrete Regressors; Proportions; Probabilities", ParentCode: "C2"},
	{Code: "C26", Level: 3, Description: "Instrumental Variables (IV) Estimation", ParentCode: "C2"},
	{Code: "D43", Level: 3, Description: "Oligopoly and Other Forms of Market Imperfection", ParentCode: "D4"},
	{Code: "D44", Level: 3, Description: "Auctions", ParentCode: "D4"},
	{Code: "D82", Level: 3, Description: "Asymmetric and Private Information; Mechanism Design", ParentCode: "D8"},
	{Code: "D83", Level: 3, Description: "Search; Learning; Information and Knowledge; Communication; Belief; Unawareness", ParentCode: "D8"},
	{Code: "L13", Level: 3, Description: "Oligopoly and Other Imperfect Markets", ParentCode: "L1"},
	{Code: "L14", Level: 3, Description: "Transactional Relationships; Contracts and Reputation; Networks", ParentCode: "L1"},
}
