// Package rico embeds the fixed vocabulary of the Records in Contexts
// ontology (RiC-O 1.0): class names, object property names, and datatype
// property names. The converter only ever asks membership questions, so the
// vocabulary is exposed as constant lookup sets behind a small value type.
package rico

// classNames lists every RiC-O class a diagram node may declare.
var classNames = []string{
	"AccumulationRelation",
	"Activity",
	"ActivityDocumentationRelation",
	"ActivityType",
	"Agent",
	"AgentControlRelation",
	"AgentHierarchicalRelation",
	"AgentName",
	"AgentTemporalRelation",
	"AgentToAgentRelation",
	"Appellation",
	"AppellationRelation",
	"AuthorityRelation",
	"AuthorshipRelation",
	"CarrierExtent",
	"CarrierType",
	"ChildRelation",
	"Concept",
	"ContentType",
	"Coordinates",
	"CorporateBody",
	"CorporateBodyType",
	"CorrespondenceRelation",
	"CreationRelation",
	"Date",
	"DateType",
	"DemographicGroup",
	"DerivationRelation",
	"DescendanceRelation",
	"DocumentaryFormType",
	"Event",
	"EventRelation",
	"EventType",
	"Extent",
	"ExtentType",
	"Family",
	"FamilyRelation",
	"FamilyType",
	"FunctionalEquivalenceRelation",
	"Group",
	"GroupSubdivisionRelation",
	"Identifier",
	"IdentifierType",
	"Instantiation",
	"InstantiationExtent",
	"InstantiationToInstantiationRelation",
	"IntellectualPropertyRightsRelation",
	"KnowingOfRelation",
	"KnowingRelation",
	"Language",
	"LeadershipRelation",
	"LegalStatus",
	"ManagementRelation",
	"Mandate",
	"MandateRelation",
	"MandateType",
	"Mechanism",
	"MembershipRelation",
	"MigrationRelation",
	"Name",
	"OccupationType",
	"OrganicOrFunctionalProvenanceRelation",
	"OrganicProvenanceRelation",
	"OwnershipRelation",
	"PerformanceRelation",
	"Person",
	"PhysicalLocation",
	"Place",
	"PlaceName",
	"PlaceRelation",
	"PlaceType",
	"Position",
	"PositionHoldingRelation",
	"PositionToGroupRelation",
	"ProductionTechniqueType",
	"Proxy",
	"Record",
	"RecordPart",
	"RecordResource",
	"RecordResourceExtent",
	"RecordResourceGeneticRelation",
	"RecordResourceHoldingRelation",
	"RecordResourceToInstantiationRelation",
	"RecordResourceToRecordResourceRelation",
	"RecordSet",
	"RecordSetType",
	"RecordState",
	"Relation",
	"RepresentationType",
	"RoleType",
	"Rule",
	"RuleRelation",
	"RuleType",
	"SequentialRelation",
	"SiblingRelation",
	"SpouseRelation",
	"TeachingRelation",
	"TemporalRelation",
	"Thing",
	"Title",
	"Type",
	"TypeRelation",
	"UnitOfMeasurement",
	"WholePartRelation",
	"WorkRelation",
}
