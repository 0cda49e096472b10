package rico

// objectPropertyNames lists every RiC-O object property. An arrow labeled
// with one of these relates two individuals.
var objectPropertyNames = []string{
	"affectsOrAffected",
	"agentHasOrHadLocation",
	"authorizedBy",
	"authorizes",
	"contained",
	"containsOrContained",
	"containsTransitive",
	"describesOrDescribed",
	"directlyContains",
	"directlyFollowsInSequence",
	"directlyIncludes",
	"directlyPrecedesInSequence",
	"documentedBy",
	"documents",
	"existsOrExistedIn",
	"expressesOrExpressed",
	"followedInSequence",
	"followsInSequenceTransitive",
	"followsInTime",
	"followsOrFollowed",
	"hadComponent",
	"hadConstituent",
	"hadPart",
	"hadSubdivision",
	"hadSubevent",
	"hadSubordinate",
	"hasAccumulator",
	"hasActivityType",
	"hasAddressee",
	"hasAncestor",
	"hasAuthor",
	"hasBeginningDate",
	"hasBirthDate",
	"hasBirthPlace",
	"hasCarrierType",
	"hasChild",
	"hasCollector",
	"hasComponentTransitive",
	"hasConstituentTransitive",
	"hasContentOfType",
	"hasCopy",
	"hasCreationDate",
	"hasCreator",
	"hasDateType",
	"hasDeathDate",
	"hasDeathPlace",
	"hasDescendant",
	"hasDestructionDate",
	"hasDirectComponent",
	"hasDirectConstituent",
	"hasDirectPart",
	"hasDirectSubdivision",
	"hasDirectSubevent",
	"hasDirectSubordinate",
	"hasDocumentaryFormType",
	"hasDraft",
	"hasEndDate",
	"hasEventType",
	"hasExtent",
	"hasExtentType",
	"hasFamilyAssociationWith",
	"hasFamilyType",
	"hasGeneticLinkToRecordResource",
	"hasIdentifierType",
	"hasModificationDate",
	"hasOrHadAgentName",
	"hasOrHadAllMembersWithCategory",
	"hasOrHadAllMembersWithContentType",
	"hasOrHadAllMembersWithCreationDate",
	"hasOrHadAllMembersWithDocumentaryFormType",
	"hasOrHadAllMembersWithLanguage",
	"hasOrHadAllMembersWithLegalStatus",
	"hasOrHadAllMembersWithRecordState",
	"hasOrHadAnalogueInstantiation",
	"hasOrHadAppellation",
	"hasOrHadAuthorityOver",
	"hasOrHadCategory",
	"hasOrHadComponent",
	"hasOrHadConstituent",
	"hasOrHadController",
	"hasOrHadCoordinates",
	"hasOrHadCorporateBodyType",
	"hasOrHadCorrespondent",
	"hasOrHadDemographicGroup",
	"hasOrHadDerivedInstantiation",
	"hasOrHadDigitalInstantiation",
	"hasOrHadEmployer",
	"hasOrHadHolder",
	"hasOrHadIdentifier",
	"hasOrHadInstantiation",
	"hasOrHadIntellectualPropertyRightsHolder",
	"hasOrHadJurisdiction",
	"hasOrHadLanguage",
	"hasOrHadLeader",
	"hasOrHadLegalStatus",
	"hasOrHadLocation",
	"hasOrHadMainSubject",
	"hasOrHadManager",
	"hasOrHadMandateType",
	"hasOrHadMember",
	"hasOrHadMostMembersWithCreationDate",
	"hasOrHadName",
	"hasOrHadOccupationOfType",
	"hasOrHadOwner",
	"hasOrHadPart",
	"hasOrHadParticipant",
	"hasOrHadPhysicalLocation",
	"hasOrHadPlaceName",
	"hasOrHadPlaceType",
	"hasOrHadPosition",
	"hasOrHadRuleType",
	"hasOrHadSomeMembersWithCategory",
	"hasOrHadSomeMembersWithContentType",
	"hasOrHadSomeMembersWithCreationDate",
	"hasOrHadSomeMembersWithLanguage",
	"hasOrHadSomeMembersWithLegalStatus",
	"hasOrHadSomeMembersWithRecordState",
	"hasOrHadSomeMemberswithDocumentaryFormType",
	"hasOrHadSpouse",
	"hasOrHadStudent",
	"hasOrHadSubdivision",
	"hasOrHadSubevent",
	"hasOrHadSubject",
	"hasOrHadSubordinate",
	"hasOrHadTeacher",
	"hasOrHadTitle",
	"hasOrHadWorkRelationWith",
	"hasOrganicOrFunctionalProvenance",
	"hasOrganicProvenance",
	"hasOriginal",
	"hasPartTransitive",
	"hasProductionTechniqueType",
	"hasPublicationDate",
	"hasPublisher",
	"hasReceiver",
	"hasRecordSetType",
	"hasRecordState",
	"hasReply",
	"hasRepresentationType",
	"hasSender",
	"hasSibling",
	"hasSubdivisionTransitive",
	"hasSubeventTransitive",
	"hasSubordinateTransitive",
	"hasSuccessor",
	"hasUnitOfMeasurement",
	"hasWithin",
	"included",
	"includesOrIncluded",
	"includesTransitive",
	"intersects",
	"isAccumulatorOf",
	"isActivityTypeOf",
	"isAddresseeOf",
	"isAgentAssociatedWithAgent",
	"isAgentAssociatedWithPlace",
	"isAssociatedWithDate",
	"isAssociatedWithEvent",
	"isAssociatedWithPlace",
	"isAssociatedWithRule",
	"isAuthorOf",
	"isBeginningDateOf",
	"isBirthDateOf",
	"isBirthPlaceOf",
	"isCarrierTypeOf",
	"isChildOf",
	"isCollectorOf",
	"isComponentOfTransitive",
	"isConstituentOfTransitive",
	"isContainedByTransitive",
	"isContentTypeOf",
	"isCopyOf",
	"isCreationDateOf",
	"isCreatorOf",
	"isDateAssociatedWith",
	"isDateOfOccurrenceOf",
	"isDateTypeOf",
	"isDeathDateOf",
	"isDeathPlaceOf",
	"isDestructionDateOf",
	"isDirectComponentOf",
	"isDirectConstituentOf",
	"isDirectPartOf",
	"isDirectSubdivisionOf",
	"isDirectSubeventOf",
	"isDirectSubordinateTo",
	"isDirectlyContainedBy",
	"isDirectlyIncludedIn",
	"isDocumentaryFormTypeOf",
	"isDraftOf",
	"isEndDateOf",
	"isEquivalentTo",
	"isEventAssociatedWith",
	"isEventTypeOf",
	"isExtentOf",
	"isExtentTypeOf",
	"isFamilyTypeOf",
	"isFromUseDateOf",
	"isFunctionallyEquivalentTo",
	"isIdentifierTypeOf",
	"isIncludedInTransitive",
	"isInstantiationAssociatedWithInstantiation",
	"isLastUpdateDateOf",
	"isModificationDateOf",
	"isOrWasAdjacentTo",
	"isOrWasAffectedBy",
	"isOrWasAgentNameOf",
	"isOrWasAnalogueInstantiationOf",
	"isOrWasAppellationOf",
	"isOrWasCategoryOf",
	"isOrWasCategoryOfAllMembersOf",
	"isOrWasCategoryOfSomeMembersOf",
	"isOrWasComponentOf",
	"isOrWasConstituentOf",
	"isOrWasContainedBy",
	"isOrWasContentTypeOfAllMembersOf",
	"isOrWasContentTypeOfSomeMembersOf",
	"isOrWasControllerOf",
	"isOrWasCoordinatesOf",
	"isOrWasCorporateBodyTypeOf",
	"isOrWasCreationDateOfAllMembersOf",
	"isOrWasCreationDateOfMostMembersOf",
	"isOrWasCreationDateOfSomeMembersOf",
	"isOrWasDemographicGroupOf",
	"isOrWasDerivedFromInstantiation",
	"isOrWasDescribedBy",
	"isOrWasDigitalInstantiationOf",
	"isOrWasDocumentaryFormTypeOfAllMembersOf",
	"isOrWasDocumentaryFormTypeOfSomeMembersOf",
	"isOrWasEmployerOf",
	"isOrWasEnforcedBy",
	"isOrWasExpressedBy",
	"isOrWasHolderOf",
	"isOrWasHolderOfIntellectualPropertyRightsOf",
	"isOrWasIdentifierOf",
	"isOrWasIncludedIn",
	"isOrWasInstantiationOf",
	"isOrWasJurisdictionOf",
	"isOrWasLanguageOf",
	"isOrWasLanguageOfAllMembersOf",
	"isOrWasLanguageOfSomeMembersOf",
	"isOrWasLeaderOf",
	"isOrWasLegalStatusOf",
	"isOrWasLegalStatusOfAllMembersOf",
	"isOrWasLegalStatusOfSomeMembersOf",
	"isOrWasLocationOf",
	"isOrWasLocationOfAgent",
	"isOrWasMainSubjectOf",
	"isOrWasManagerOf",
	"isOrWasMandateTypeOf",
	"isOrWasMemberOf",
	"isOrWasNameOf",
	"isOrWasOccupationTypeOf",
	"isOrWasOccupiedBy",
	"isOrWasOwnerOf",
	"isOrWasPartOf",
	"isOrWasParticipantIn",
	"isOrWasPerformedBy",
	"isOrWasPhysicalLocationOf",
	"isOrWasPlaceNameOf",
	"isOrWasPlaceTypeOf",
	"isOrWasRecordStateOfAllMembersOf",
	"isOrWasRecordStateOfSomeMembersOf",
	"isOrWasRegulatedBy",
	"isOrWasResponsibleForEnforcing",
	"isOrWasRuleTypeOf",
	"isOrWasSubdivisionOf",
	"isOrWasSubeventOf",
	"isOrWasSubjectOf",
	"isOrWasSubordinateTo",
	"isOrWasTitleOf",
	"isOrWasUnderAuthorityOf",
	"isOrganicOrFunctionalProvenanceOf",
	"isOrganicProvenanceOf",
	"isOriginalOf",
	"isPartOfTransitive",
	"isPlaceAssociatedWith",
	"isPlaceAssociatedWithAgent",
	"isProductionTechniqueTypeOf",
	"isPublicationDateOf",
	"isPublisherOf",
	"isReceiverOf",
	"isRecordResourceAssociatedWithRecordResource",
	"isRecordSetTypeOf",
	"isRecordStateOf",
	"isRelatedTo",
	"isReplyTo",
	"isRepresentationTypeOf",
	"isResponsibleForIssuing",
	"isRuleAssociatedWith",
	"isSenderOf",
	"isSubdivisionOfTransitive",
	"isSubeventOfTransitive",
	"isSubordinateToTransitive",
	"isSuccessorOf",
	"isToUseDateOf",
	"isUnitOfMeasurementOf",
	"isWithin",
	"issuedBy",
	"knownBy",
	"knows",
	"knowsOf",
	"migratedFrom",
	"migratedInto",
	"occupiesOrOccupied",
	"occurredAtDate",
	"overlapsOrOverlapped",
	"performsOrPerformed",
	"precededInSequence",
	"precedesInSequenceTransitive",
	"precedesInTime",
	"precedesOrPreceded",
	"proxyFor",
	"proxyIn",
	"regulatesOrRegulated",
	"resultedFromTheMergerOf",
	"resultedFromTheSplitOf",
	"resultsOrResultedFrom",
	"resultsOrResultedIn",
	"wasComponentOf",
	"wasConstituentOf",
	"wasContainedBy",
	"wasIncludedIn",
	"wasLastUpdatedAtDate",
	"wasMergedInto",
	"wasPartOf",
	"wasSplitInto",
	"wasSubdivisionOf",
	"wasSubeventOf",
	"wasSubordinateTo",
	"wasUsedFromDate",
	"wasUsedToDate",
}

// datatypePropertyNames lists every RiC-O datatype property. An arrow
// labeled with one of these relates an individual to a literal value.
var datatypePropertyNames = []string{
	"accruals",
	"accrualsStatus",
	"altimetricSystem",
	"altitude",
	"authenticityNote",
	"authorizingMandate",
	"beginningDate",
	"birthDate",
	"carrierExtent",
	"classification",
	"conditionsOfAccess",
	"conditionsOfUse",
	"creationDate",
	"date",
	"dateQualifier",
	"deathDate",
	"destructionDate",
	"endDate",
	"expressedDate",
	"generalDescription",
	"geodesicSystem",
	"geographicalCoordinates",
	"height",
	"history",
	"identifier",
	"instantiationExtent",
	"instantiationStructure",
	"integrityNote",
	"lastModificationDate",
	"latitude",
	"length",
	"location",
	"longitude",
	"measure",
	"modificationDate",
	"name",
	"normalizedDateValue",
	"normalizedValue",
	"physicalCharacteristicsNote",
	"physicalOrLogicalExtent",
	"productionTechnique",
	"publicationDate",
	"qualityOfRepresentationNote",
	"quantity",
	"recordResourceExtent",
	"recordResourceStructure",
	"referenceSystem",
	"relationCertainty",
	"relationSource",
	"relationState",
	"ruleFollowed",
	"scopeAndContent",
	"structure",
	"technicalCharacteristics",
	"textualValue",
	"title",
	"type",
	"unitOfMeasurement",
	"usedFromDate",
	"usedToDate",
	"width",
}
